package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch observa um arquivo de cena e entrega uma nova versão a cada gravação válida.
// O diretório é observado (não o arquivo), pois editores costumam substituir o arquivo
// por rename. Os canais são fechados quando ctx termina.
func Watch(ctx context.Context, path string) (<-chan *Scene, <-chan error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao criar watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("falha ao observar %s: %w", filepath.Dir(abs), err)
	}

	scenes := make(chan *Scene, 1)
	errs := make(chan error, 1)

	go func() {
		defer watcher.Close()
		defer close(scenes)
		defer close(errs)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				s, err := Load(abs)
				if err != nil {
					sendLatest(ctx, errs, err)
					continue
				}
				sendLatest(ctx, scenes, s)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				sendLatest(ctx, errs, err)
			}
		}
	}()

	return scenes, errs, nil
}

// sendLatest entrega v descartando um valor antigo ainda não consumido.
func sendLatest[T any](ctx context.Context, ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
