package textures

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"DeskScene/shared/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader simula a GPU: canais por arquivo, IDs sequenciais.
type fakeLoader struct {
	channels map[string]int
	nextID   uint32
	released int
	unloaded []uint32
	failGPU  bool
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{channels: make(map[string]int), nextID: 3}
}

func (f *fakeLoader) Decode(path string) (Image, error) {
	ch, ok := f.channels[filepath.Base(path)]
	if !ok {
		return Image{}, errors.New("arquivo não encontrado")
	}
	return Image{Width: 64, Height: 32, Channels: ch}, nil
}

func (f *fakeLoader) Upload(img Image) (Texture, error) {
	if f.failGPU {
		return Texture{}, errors.New("sem contexto")
	}
	f.nextID++
	return Texture{ID: f.nextID, Width: img.Width, Height: img.Height, Channels: img.Channels}, nil
}

func (f *fakeLoader) Release(Image) { f.released++ }

func (f *fakeLoader) Unload(tex Texture) { f.unloaded = append(f.unloaded, tex.ID) }

func TestCreateAndFind(t *testing.T) {
	loader := newFakeLoader()
	loader.channels["desk.jpg"] = 3
	loader.channels["wall.png"] = 4
	r := NewRegistry(loader)

	require.NoError(t, r.Create("textures/desk.jpg", "desk"))
	require.NoError(t, r.Create("textures/wall.png", "wall"))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"desk", "wall"}, r.Tags())
	assert.Equal(t, 1, r.FindSlot("wall"))
	assert.Equal(t, -1, r.FindSlot("monitor"))

	id, ok := r.FindID("wall")
	require.True(t, ok)
	assert.Equal(t, uint32(5), id)

	_, ok = r.FindID("monitor")
	assert.False(t, ok)

	tex, ok := r.Find("desk")
	require.True(t, ok)
	assert.Equal(t, 3, tex.Channels)
	assert.Equal(t, 2, loader.released)
}

func TestCreateRejectsUnsupportedChannels(t *testing.T) {
	for _, ch := range []int{1, 2, 5} {
		loader := newFakeLoader()
		loader.channels["gray.png"] = ch
		r := NewRegistry(loader)

		err := r.Create("gray.png", "gray")
		assert.ErrorIs(t, err, ErrUnsupportedChannels)
		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 1, loader.released, "imagem deve ser liberada")
	}
}

func TestCreateFailures(t *testing.T) {
	loader := newFakeLoader()
	loader.channels["a.jpg"] = 3
	r := NewRegistry(loader)

	assert.Error(t, r.Create("missing.jpg", "missing"))
	require.NoError(t, r.Create("a.jpg", "a"))
	assert.ErrorIs(t, r.Create("a.jpg", "a"), ErrDuplicateTag)

	loader.failGPU = true
	assert.Error(t, r.Create("a.jpg", "b"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryIsBounded(t *testing.T) {
	loader := newFakeLoader()
	loader.channels["t.jpg"] = 3
	r := NewRegistry(loader)

	for i := 0; i < MaxSlots; i++ {
		require.NoError(t, r.Create("t.jpg", fmt.Sprintf("t%d", i)))
	}
	assert.ErrorIs(t, r.Create("t.jpg", "extra"), ErrRegistryFull)
	assert.Equal(t, MaxSlots, r.Len())
	assert.Equal(t, MaxSlots-1, r.FindSlot(fmt.Sprintf("t%d", MaxSlots-1)))
}

func TestDestroyUnloadsEverything(t *testing.T) {
	loader := newFakeLoader()
	loader.channels["a.jpg"] = 3
	r := NewRegistry(loader)
	require.NoError(t, r.Create("a.jpg", "a"))
	require.NoError(t, r.Create("a.jpg", "b"))

	r.Destroy()

	assert.Equal(t, []uint32{4, 5}, loader.unloaded)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, -1, r.FindSlot("a"))
	require.NoError(t, r.Create("a.jpg", "a"))
}

func TestLoadAllContinuesPastFailures(t *testing.T) {
	loader := newFakeLoader()
	loader.channels["keyboard.jpg"] = 3
	loader.channels["wall.jpg"] = 4
	loader.channels["mask.png"] = 1
	r := NewRegistry(loader)

	res := LoadAll(r, "textures", []scene.TextureRef{
		{Tag: "keyboard", File: "keyboard.jpg"},
		{Tag: "missing", File: "missing.jpg"},
		{Tag: "mask", File: "mask.png"},
		{Tag: "wall", File: "wall.jpg"},
	})

	assert.Equal(t, 2, res.Loaded)
	assert.Equal(t, 2, res.Failed())
	assert.ErrorIs(t, res.Errors[1], ErrUnsupportedChannels)
	assert.Equal(t, []string{"keyboard", "wall"}, r.Tags())
}
