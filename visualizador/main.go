package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"DeskScene/shared/config"
	"DeskScene/visualizador/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	sceneName := flag.String("scene", "", "Cena embutida a exibir (desk, shapes)")
	sceneFile := flag.String("file", "", "Arquivo de cena YAML/JSON (tem prioridade sobre -scene)")
	textureDir := flag.String("textures", "", "Diretório das texturas")
	dbPath := flag.String("db", "", "Banco de cenas salvas")
	noWatch := flag.Bool("nowatch", false, "Não recarregar o arquivo de cena ao ser alterado")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Carregar configurações
	cfg := config.Load()

	// Configurar Log em Arquivo
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
			log.Println("--- INICIANDO DESKSCENE ---")
		}
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║           DeskScene v0.1.0           ║")
	log.Println("║   Cena 3D de mesa com primitivas     ║")
	log.Println("╚══════════════════════════════════════╝")

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *sceneName != "" {
		cfg.SceneName = *sceneName
	}
	if *sceneFile != "" {
		cfg.ScenePath = *sceneFile
	}
	if *textureDir != "" {
		cfg.TextureDir = *textureDir
	}
	if *dbPath != "" {
		cfg.SceneDB = *dbPath
	}
	if *noWatch {
		cfg.WatchScene = false
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[Main] Erro fatal: %v", err)
	}
}
