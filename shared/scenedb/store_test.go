package scenedb

import (
	"errors"
	"path/filepath"
	"testing"

	"DeskScene/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "scenes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadScene(t *testing.T) {
	s := openTemp(t)
	desk := scene.DeskScene()

	require.NoError(t, s.SaveScene(desk))

	got, err := s.LoadScene("desk")
	require.NoError(t, err)
	assert.Equal(t, desk, got)
}

func TestSaveSceneReplaces(t *testing.T) {
	s := openTemp(t)
	desk := scene.DeskScene()
	require.NoError(t, s.SaveScene(desk))

	desk.Title = "Mesa nova"
	desk.Objects = desk.Objects[:3]
	require.NoError(t, s.SaveScene(desk))

	infos, err := s.ListScenes()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Mesa nova", infos[0].Title)
	assert.Equal(t, 3, infos[0].Objects)
}

func TestSaveSceneRejectsInvalid(t *testing.T) {
	s := openTemp(t)
	bad := scene.ShapesScene()
	bad.Objects[0].Shape = "teapot"

	err := s.SaveScene(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scene.ErrUnknownShape))

	_, err = s.LoadScene(bad.Name)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListScenes(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveScene(scene.ShapesScene()))
	require.NoError(t, s.SaveScene(scene.DeskScene()))

	infos, err := s.ListScenes()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "desk", infos[0].Name)
	assert.Equal(t, "shapes", infos[1].Name)
	assert.Equal(t, len(scene.DeskScene().Objects), infos[0].Objects)
	assert.False(t, infos[0].UpdatedAt.IsZero())
}

func TestDeleteScene(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveScene(scene.DeskScene()))
	require.NoError(t, s.SaveCamera("desk", scene.DefaultView()))

	require.NoError(t, s.DeleteScene("desk"))

	_, err := s.LoadScene("desk")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.LoadCamera("desk")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(s.DeleteScene("desk"), ErrNotFound))
}

func TestCamera(t *testing.T) {
	s := openTemp(t)
	view := scene.View{Target: mgl32.Vec3{1, 2, 3}, Distance: 9, AngleY: 15, AngleX: -40, Orthographic: true}

	require.NoError(t, s.SaveCamera("desk", view))
	got, err := s.LoadCamera("desk")
	require.NoError(t, err)
	assert.Equal(t, view, got)

	view.Distance = 20
	require.NoError(t, s.SaveCamera("desk", view))
	got, err = s.LoadCamera("desk")
	require.NoError(t, err)
	assert.Equal(t, float32(20), got.Distance)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveScene(scene.ShapesScene()))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadScene("shapes")
	require.NoError(t, err)
	assert.Equal(t, scene.ShapesScene(), got)
}

func TestClosedStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "scenes.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.SaveScene(scene.DeskScene()), ErrNotOpen)
	_, err = s.LoadScene("desk")
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = s.ListScenes()
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, s.DeleteScene("desk"), ErrNotOpen)
	assert.ErrorIs(t, s.SaveCamera("desk", scene.DefaultView()), ErrNotOpen)
	_, err = s.LoadCamera("desk")
	assert.ErrorIs(t, err, ErrNotOpen)
}
