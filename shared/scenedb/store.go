// Package scenedb persiste cenas e enquadramentos de câmera em SQLite.
package scenedb

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"DeskScene/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotOpen  = errors.New("banco de dados não inicializado")
	ErrNotFound = errors.New("cena não encontrada")
)

// SceneModel é o esquema de uma cena salva. A cena vai inteira serializada em GOB.
type SceneModel struct {
	Name      string `gorm:"primaryKey"`
	Title     string
	Objects   int
	Data      []byte
	UpdatedAt time.Time
}

// CameraModel guarda o último enquadramento usado em cada cena.
type CameraModel struct {
	Scene                     string `gorm:"primaryKey"`
	TargetX, TargetY, TargetZ float32
	Distance                  float32
	AngleY, AngleX            float32
	Orthographic              bool
	UpdatedAt                 time.Time
}

// Metadata armazena informações globais do banco.
type Metadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SceneInfo resume uma cena salva.
type SceneInfo struct {
	Name      string
	Title     string
	Objects   int
	UpdatedAt time.Time
}

const CurrentFormatVersion = 1

// Store é o banco de cenas.
type Store struct {
	DB   *gorm.DB
	Path string
}

// Open abre (ou cria) o banco SQLite e roda as migrações.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Logger silencioso; os erros voltam pelo retorno
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&SceneModel{}, &CameraModel{}, &Metadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&Metadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[CenaDB] Banco de dados SQLite aberto: %s", path)
	return &Store{DB: db, Path: path}, nil
}

// Close fecha o banco. Operações posteriores retornam ErrNotOpen.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	s.DB = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveScene valida e salva a cena, substituindo uma versão anterior de mesmo nome.
func (s *Store) SaveScene(sc *scene.Scene) error {
	if s.DB == nil {
		return ErrNotOpen
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sc); err != nil {
		log.Printf("[CenaDB] ERRO GOB na cena %s: %v", sc.Name, err)
		return err
	}

	model := SceneModel{
		Name:    sc.Name,
		Title:   sc.Title,
		Objects: len(sc.Objects),
		Data:    buf.Bytes(),
	}

	// Upsert (Cria ou Atualiza)
	if err := s.DB.Save(&model).Error; err != nil {
		log.Printf("[CenaDB] ERRO ao salvar cena %s: %v", sc.Name, err)
		return err
	}
	log.Printf("[CenaDB] Cena '%s' salva (%d objetos)", sc.Name, len(sc.Objects))
	return nil
}

// LoadScene carrega uma cena salva.
func (s *Store) LoadScene(name string) (*scene.Scene, error) {
	if s.DB == nil {
		return nil, ErrNotOpen
	}

	var model SceneModel
	if err := s.DB.First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}

	var sc scene.Scene
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&sc); err != nil {
		return nil, fmt.Errorf("cena %s corrompida: %w", name, err)
	}
	return &sc, nil
}

// ListScenes lista as cenas salvas em ordem alfabética.
func (s *Store) ListScenes() ([]SceneInfo, error) {
	if s.DB == nil {
		return nil, ErrNotOpen
	}

	var models []SceneModel
	if err := s.DB.Select("name", "title", "objects", "updated_at").Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	infos := make([]SceneInfo, len(models))
	for i, m := range models {
		infos[i] = SceneInfo{Name: m.Name, Title: m.Title, Objects: m.Objects, UpdatedAt: m.UpdatedAt}
	}
	return infos, nil
}

// DeleteScene remove a cena e o enquadramento associado.
func (s *Store) DeleteScene(name string) error {
	if s.DB == nil {
		return ErrNotOpen
	}

	res := s.DB.Delete(&SceneModel{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.DB.Delete(&CameraModel{}, "scene = ?", name).Error
}

// SaveCamera guarda o enquadramento da câmera para a cena.
func (s *Store) SaveCamera(sceneName string, v scene.View) error {
	if s.DB == nil {
		return ErrNotOpen
	}
	model := CameraModel{
		Scene:        sceneName,
		TargetX:      v.Target.X(),
		TargetY:      v.Target.Y(),
		TargetZ:      v.Target.Z(),
		Distance:     v.Distance,
		AngleY:       v.AngleY,
		AngleX:       v.AngleX,
		Orthographic: v.Orthographic,
	}
	return s.DB.Save(&model).Error
}

// LoadCamera retorna o enquadramento salvo da cena.
func (s *Store) LoadCamera(sceneName string) (scene.View, error) {
	if s.DB == nil {
		return scene.View{}, ErrNotOpen
	}

	var model CameraModel
	if err := s.DB.First(&model, "scene = ?", sceneName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scene.View{}, fmt.Errorf("%w: câmera de %s", ErrNotFound, sceneName)
		}
		return scene.View{}, err
	}

	return scene.View{
		Target:       mgl32.Vec3{model.TargetX, model.TargetY, model.TargetZ},
		Distance:     model.Distance,
		AngleY:       model.AngleY,
		AngleX:       model.AngleX,
		Orthographic: model.Orthographic,
	}, nil
}
