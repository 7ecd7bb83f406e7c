package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var groupKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine}

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	// WASD, Q/E, mouse, zoom e P/O
	prev := a.Cam.Mode
	a.Cam.HandleInput(dt)
	if a.Cam.Mode != prev {
		log.Printf("[Camera] Projeção %s", a.Cam.Mode)
	}

	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// ESC: alternar pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateViewing {
			a.State = StatePaused
		} else {
			a.State = StateViewing
		}
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		a.saveToDB()
	}

	if rl.IsKeyPressed(rl.KeyF9) {
		a.reloadScene()
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// 1-9: mostrar/esconder grupos de objetos
	groups := a.current.Groups()
	for i, key := range groupKeys {
		if !rl.IsKeyPressed(key) {
			continue
		}
		if group, ok := groupForKey(groups, i+1); ok {
			visible := !a.scenes.GroupVisible(group)
			a.scenes.SetGroupVisible(group, visible)
			log.Printf("[App] Grupo '%s' visível: %v", group, visible)
		}
	}
}
