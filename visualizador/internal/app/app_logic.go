package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"DeskScene/shared/config"
	"DeskScene/shared/scene"
	"DeskScene/shared/scenedb"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Origens possíveis de uma cena.
const (
	SourceFile    = "arquivo"
	SourceDB      = "banco"
	SourceBuiltin = "embutida"
)

const statusDuration = 3.0 // segundos

// loadInitialScene escolhe a cena a exibir: o arquivo configurado, depois a versão salva
// no banco, depois a cena embutida com o mesmo nome.
func loadInitialScene(cfg *config.Config, store *scenedb.Store) (*scene.Scene, string, error) {
	if cfg.ScenePath != "" {
		s, err := scene.Load(cfg.ScenePath)
		if err == nil {
			return s, SourceFile, nil
		}
		log.Printf("[Cena] Arquivo %s inválido, usando cena '%s': %v", cfg.ScenePath, cfg.SceneName, err)
	}

	if store != nil {
		s, err := store.LoadScene(cfg.SceneName)
		if err == nil {
			return s, SourceDB, nil
		}
		if !errors.Is(err, scenedb.ErrNotFound) {
			log.Printf("[Cena] Erro ao ler cena salva '%s': %v", cfg.SceneName, err)
		}
	}

	s, err := scene.Builtin(cfg.SceneName)
	if err != nil {
		return nil, "", err
	}
	return s, SourceBuiltin, nil
}

// groupForKey retorna o grupo ligado à tecla numérica n (1 a 9).
func groupForKey(groups []string, n int) (string, bool) {
	if n < 1 || n > 9 || n > len(groups) {
		return "", false
	}
	return groups[n-1], true
}

// applyScene prepara a cena na GPU. Se resetCamera, a câmera vai para o enquadramento
// salvo da cena ou, na falta dele, para o inicial.
func (a *App) applyScene(s *scene.Scene, source string, resetCamera bool) error {
	report, err := a.scenes.PrepareScene(s, a.Config.TextureDir)
	if err != nil {
		log.Printf("[Cena] Falha ao preparar '%s': %v", s.Name, err)
		a.setStatus(fmt.Sprintf("Falha ao preparar cena: %v", err))
		return err
	}
	for _, e := range report.TextureErrors {
		log.Printf("[Cena] Textura não carregada: %v", e)
	}

	a.current = s
	a.source = source
	a.report = report

	if resetCamera {
		view := s.InitialView()
		if a.store != nil {
			if saved, err := a.store.LoadCamera(s.Name); err == nil {
				view = saved
			}
		}
		a.Cam.Restore(view)
	}

	title := s.Title
	if title == "" {
		title = s.Name
	}
	rl.SetWindowTitle(fmt.Sprintf("%s - %s", a.Config.WindowTitle, title))
	a.setStatus(fmt.Sprintf("Cena '%s' carregada (%s)", title, source))
	return nil
}

// reloadScene relê a cena da mesma origem e reposiciona a câmera.
func (a *App) reloadScene() {
	var (
		s   *scene.Scene
		err error
	)
	switch a.source {
	case SourceFile:
		s, err = scene.Load(a.Config.ScenePath)
	case SourceDB:
		s, err = a.store.LoadScene(a.current.Name)
	default:
		s, err = scene.Builtin(a.current.Name)
	}
	if err != nil {
		log.Printf("[Cena] Falha ao recarregar: %v", err)
		a.setStatus(fmt.Sprintf("Falha ao recarregar: %v", err))
		return
	}
	a.applyScene(s, a.source, true)
}

// saveToDB grava a cena atual e o enquadramento da câmera no banco.
func (a *App) saveToDB() {
	if a.store == nil {
		a.setStatus("Banco de cenas indisponível")
		return
	}
	if err := a.store.SaveScene(a.current); err != nil {
		a.setStatus(fmt.Sprintf("Erro ao salvar: %v", err))
		return
	}
	if err := a.store.SaveCamera(a.current.Name, a.Cam.State()); err != nil {
		a.setStatus(fmt.Sprintf("Erro ao salvar câmera: %v", err))
		return
	}
	a.setStatus(fmt.Sprintf("Cena '%s' salva em %s", a.current.Name, a.store.Path))
}

// startWatch passa a observar o arquivo de cena.
func (a *App) startWatch() {
	ctx, cancel := context.WithCancel(context.Background())
	updates, errs, err := scene.Watch(ctx, a.Config.ScenePath)
	if err != nil {
		cancel()
		log.Printf("[Cena] Recarga automática desativada: %v", err)
		return
	}
	a.sceneUpdates = updates
	a.sceneErrors = errs
	a.stopWatch = cancel
	log.Printf("[Cena] Observando %s", a.Config.ScenePath)
}

// pollSceneFile aplica, na thread principal, as versões novas do arquivo de cena.
func (a *App) pollSceneFile() {
	if a.sceneUpdates == nil {
		return
	}
	select {
	case s, ok := <-a.sceneUpdates:
		if !ok {
			a.sceneUpdates = nil
			return
		}
		log.Printf("[Cena] Arquivo alterado, recarregando '%s'", s.Name)
		a.applyScene(s, SourceFile, false)
	case err, ok := <-a.sceneErrors:
		if !ok {
			a.sceneErrors = nil
			return
		}
		log.Printf("[Cena] Arquivo de cena inválido: %v", err)
		a.setStatus("Arquivo de cena inválido, mantendo versão anterior")
	default:
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = rl.GetTime() + statusDuration
}
