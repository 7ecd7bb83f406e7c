package app

import (
	"context"
	"fmt"
	"log"

	"DeskScene/shared/config"
	"DeskScene/shared/scene"
	"DeskScene/shared/scenedb"
	"DeskScene/shared/util"
	"DeskScene/visualizador/internal/camera"
	"DeskScene/visualizador/internal/render"
	"DeskScene/visualizador/internal/scenemgr"
	"DeskScene/visualizador/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Visualizando a cena
	StatePaused                  // Menu de pausa aberto
)

var (
	_ scenemgr.Uniforms   = (*render.ShaderProgram)(nil)
	_ scenemgr.MeshDrawer = (*render.MeshLibrary)(nil)
	_ textures.Loader     = render.TextureLoader{}
)

// frameHistory é quantos frames o gráfico de tempo de frame mostra.
const frameHistory = 128

// App é a aplicação principal do DeskScene.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.CameraController

	// Recursos de GPU e cena
	program *render.ShaderProgram
	meshes  *render.MeshLibrary
	scenes  *scenemgr.Manager
	store   *scenedb.Store

	current *scene.Scene
	source  string // origem da cena atual (arquivo, banco, embutida)
	report  scenemgr.PrepareReport

	// Recarga automática do arquivo de cena
	sceneUpdates <-chan *scene.Scene
	sceneErrors  <-chan error
	stopWatch    context.CancelFunc

	// Mensagem temporária no HUD
	status      string
	statusUntil float64

	frameCount int
	frameTimes *util.RingBuffer[float32] // ms por frame, para o gráfico do HUD
	quit       bool
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:     cfg,
		State:      StateViewing,
		frameTimes: util.NewRingBuffer[float32](frameHistory),
	}
}

// Run abre a janela e executa o loop principal até a janela ser fechada.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	flags := uint32(rl.FlagWindowResizable)
	if a.Config.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC abre o menu de pausa

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	if err := a.init(); err != nil {
		rl.CloseWindow()
		return err
	}

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// init cria os recursos de GPU, abre o banco e prepara a primeira cena.
func (a *App) init() error {
	program, err := render.LoadShaderProgram()
	if err != nil {
		return err
	}
	a.program = program
	a.meshes = render.NewMeshLibrary(program)
	a.scenes = scenemgr.New(program, a.meshes, textures.NewRegistry(render.TextureLoader{}))

	if a.Config.SceneDB != "" {
		store, err := scenedb.Open(a.Config.SceneDB)
		if err != nil {
			log.Printf("[App] AVISO: banco de cenas indisponível: %v", err)
		} else {
			a.store = store
		}
	}

	s, source, err := loadInitialScene(a.Config, a.store)
	if err != nil {
		return fmt.Errorf("nenhuma cena para exibir: %w", err)
	}

	a.Cam = camera.New(s.InitialView())
	a.Cam.Fovy = a.Config.FOV
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.RotateSpeed = a.Config.CameraSensitivity
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed

	if err := a.applyScene(s, source, true); err != nil {
		return err
	}

	if a.Config.WatchScene && a.Config.ScenePath != "" {
		a.startWatch()
	}
	return nil
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	a.frameTimes.Push(rl.GetFrameTime() * 1000)

	a.updateInput()
	switch a.State {
	case StateViewing:
		a.updateCamera()
		a.pollSceneFile()
	case StatePaused:
		a.pollSceneFile()
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.stopWatch != nil {
		a.stopWatch()
	}

	// O último enquadramento fica salvo para a próxima sessão
	if a.store != nil && a.current != nil {
		if err := a.store.SaveCamera(a.current.Name, a.Cam.State()); err != nil {
			log.Printf("[App] Erro ao salvar câmera: %v", err)
		}
	}

	a.scenes.Destroy()
	a.meshes.Unload()
	a.program.Unload()

	if a.store != nil {
		a.store.Close()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
