package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do DeskScene.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`
	MSAA         bool   `json:"msaa"`

	// Cena
	SceneName  string `json:"scene_name"`  // Cena embutida (desk, shapes)
	ScenePath  string `json:"scene_path"`  // Arquivo YAML/JSON; tem prioridade sobre SceneName
	TextureDir string `json:"texture_dir"` // Diretório das imagens referenciadas pela cena
	WatchScene bool   `json:"watch_scene"` // Recarrega ScenePath quando o arquivo muda

	// Persistência
	SceneDB string `json:"scene_db"`

	// Câmera
	FOV               float32 `json:"fov"`
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool   `json:"show_debug_info"`
	ShowGrid      bool   `json:"show_grid"`
	WireframeMode bool   `json:"wireframe_mode"`
	LogFile       string `json:"log_file"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "DeskScene",
		Fullscreen:   false,
		TargetFPS:    60,
		MSAA:         true,

		SceneName:  "desk",
		ScenePath:  "",
		TextureDir: "assets/textures",
		WatchScene: true,

		SceneDB: "data/scenes.db",

		FOV:               45.0,
		CameraSpeed:       6.0,
		CameraSensitivity: 2.0,
		ZoomSpeed:         1.5,

		ShowDebugInfo: true,
		ShowGrid:      false,
		WireframeMode: false,
		LogFile:       "debug_deskscene.log",
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do config.json ao lado do executável.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	return LoadFrom(configPath())
}

// LoadFrom carrega as configurações de um arquivo JSON. Campos ausentes mantêm o padrão;
// um arquivo ilegível ou inválido resulta na configuração padrão.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações no config.json ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
