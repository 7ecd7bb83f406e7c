package app

import (
	"fmt"
	"strings"

	"DeskScene/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(util.ColorToRL(a.current.Background))

	a.drawScene()
	a.drawHUD()
	a.drawStatus()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.WireframeMode {
		rl.EnableWireMode()
	}

	a.scenes.SetViewPosition(a.Cam.Position())
	a.scenes.RenderScene()

	if a.Config.WireframeMode {
		rl.DisableWireMode()
	}

	// Grid de referência no plano do tampo
	if a.Config.ShowGrid {
		rl.DrawGrid(20, 1.0)
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(250)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(a.Cam.Mode.String(), x+215, y+12, 16, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Cena
	rl.DrawText("CENA", x+10, y+45, 12, rl.Gray)
	title := a.current.Title
	if title == "" {
		title = a.current.Name
	}
	rl.DrawText(fmt.Sprintf("%s (%s)", title, a.source), x+10, y+60, 16, rl.Gold)

	stats := a.scenes.Stats()
	rl.DrawText(fmt.Sprintf("Objetos: %d/%d | Malhas: %d (%d tri)", stats.Drawn, stats.Objects, a.meshes.Len(), a.meshes.Triangles()), x+10, y+80, 14, rl.LightGray)

	texColor := rl.LightGray
	if len(a.report.TextureErrors) > 0 {
		texColor = rl.Orange
	}
	rl.DrawText(fmt.Sprintf("Texturas: %d ok, %d falharam | Luzes: %d", a.report.TexturesLoaded, len(a.report.TextureErrors), a.report.Lights), x+10, y+97, 14, texColor)

	rl.DrawLine(x+10, y+117, x+width-10, y+117, rl.NewColor(100, 100, 100, 100))

	// Grupos (teclas 1-9)
	rl.DrawText("GRUPOS", x+10, y+125, 12, rl.Gray)
	var parts []string
	for i, group := range a.current.Groups() {
		if i >= 9 {
			break
		}
		mark := "+"
		if !a.scenes.GroupVisible(group) {
			mark = "-"
		}
		parts = append(parts, fmt.Sprintf("%d%s%s", i+1, mark, group))
	}
	rl.DrawText(strings.Join(parts, " "), x+10, y+140, 14, rl.LightGray)

	rl.DrawLine(x+10, y+160, x+width-10, y+160, rl.NewColor(100, 100, 100, 100))

	// Atalhos
	rl.DrawText("CONTROLES", x+10, y+170, 12, rl.Gray)
	rl.DrawText("WASD: Mover | Q/E: Altura | Scroll: Zoom", x+10, y+185, 14, rl.LightGray)
	rl.DrawText("P/O: Projeção | 1-9: Grupos | G: Grid", x+10, y+202, 14, rl.LightGray)

	wireframeExtra := ""
	if a.Config.WireframeMode {
		wireframeExtra = " [WIREFRAME]"
	}
	rl.DrawText(fmt.Sprintf("F5: Salvar | F9: Recarregar | F3: HUD%s", wireframeExtra), x+10, y+222, 14, rl.SkyBlue)

	a.drawFrameGraph(x, y+height+6, width, 40)
}

// drawFrameGraph desenha o tempo dos últimos frames; a linha amarela marca 16.6ms.
func (a *App) drawFrameGraph(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, rl.NewColor(0, 0, 0, 180))

	samples := a.frameTimes.Values()
	if len(samples) == 0 {
		return
	}

	const scaleMs = 40.0
	var total, worst float32
	step := float32(w) / float32(a.frameTimes.Cap())
	for i, ms := range samples {
		total += ms
		worst = max(worst, ms)
		bar := int32(min(ms/scaleMs, 1) * float32(h))
		color := rl.Green
		if ms > 33.3 {
			color = rl.Red
		} else if ms > 16.7 {
			color = rl.Yellow
		}
		rl.DrawRectangle(x+int32(float32(i)*step), y+h-bar, max(int32(step), 1), bar, color)
	}

	target := y + h - int32(16.6/scaleMs*float32(h))
	rl.DrawLine(x, target, x+w, target, rl.NewColor(255, 255, 0, 120))
	rl.DrawText(fmt.Sprintf("%.1fms méd / %.1fms máx", total/float32(len(samples)), worst), x+6, y+4, 12, rl.LightGray)
}

// drawStatus mostra a última mensagem por alguns segundos.
func (a *App) drawStatus() {
	if a.status == "" || rl.GetTime() > a.statusUntil {
		return
	}
	size := int32(18)
	w := rl.MeasureText(a.status, size)
	x := int32(20)
	y := int32(rl.GetScreenHeight()) - 40
	rl.DrawRectangle(x-8, y-6, w+16, size+12, rl.NewColor(0, 0, 0, 180))
	rl.DrawText(a.status, x, y, size, rl.White)
}

// drawPauseMenu desenha o menu de pausa centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(300)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateViewing
	}

	if a.drawButton(buttonX, panelY+145, buttonWidth, buttonHeight, "SALVAR CENA (F5)", rl.SkyBlue) {
		a.saveToDB()
	}

	if a.drawButton(buttonX, panelY+200, buttonWidth, buttonHeight, "SAIR", rl.Red) {
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor = rl.ColorBrightness(color, 0.2)
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
