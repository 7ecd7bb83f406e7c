package render

import (
	"errors"
	"fmt"
	"os"

	"DeskScene/visualizador/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrImageFormat = errors.New("formato de imagem não reconhecido")

// TextureLoader decodifica imagens com a Raylib e cria as texturas na GPU.
type TextureLoader struct{}

// Decode lê a imagem e a inverte verticalmente (origem do OpenGL no canto inferior).
func (TextureLoader) Decode(path string) (textures.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return textures.Image{}, err
	}
	img := rl.LoadImage(path)
	if img == nil || !rl.IsImageValid(img) {
		return textures.Image{}, fmt.Errorf("%w: %s", ErrImageFormat, path)
	}
	rl.ImageFlipVertical(img)

	return textures.Image{
		Width:    img.Width,
		Height:   img.Height,
		Channels: channels(img.Format),
		Handle:   img,
	}, nil
}

// Upload cria a textura com mipmaps, filtro linear e repetição nas bordas.
func (TextureLoader) Upload(img textures.Image) (textures.Texture, error) {
	raw, ok := img.Handle.(*rl.Image)
	if !ok || raw == nil {
		return textures.Texture{}, errors.New("imagem sem dados")
	}
	tex := rl.LoadTextureFromImage(raw)
	if tex.ID == 0 {
		return textures.Texture{}, errors.New("LoadTextureFromImage falhou")
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)

	return textures.Texture{
		ID:       tex.ID,
		Width:    tex.Width,
		Height:   tex.Height,
		Channels: img.Channels,
		Handle:   tex,
	}, nil
}

func (TextureLoader) Release(img textures.Image) {
	if raw, ok := img.Handle.(*rl.Image); ok && raw != nil {
		rl.UnloadImage(raw)
	}
}

func (TextureLoader) Unload(tex textures.Texture) {
	if raw, ok := tex.Handle.(rl.Texture2D); ok && raw.ID != 0 {
		rl.UnloadTexture(raw)
	}
}

// rlTexture recupera a textura da Raylib criada por Upload.
func rlTexture(tex textures.Texture) (rl.Texture2D, bool) {
	raw, ok := tex.Handle.(rl.Texture2D)
	if !ok || raw.ID == 0 {
		return rl.Texture2D{}, false
	}
	return raw, true
}

// channels traduz o formato de pixel da Raylib para o número de canais.
func channels(format rl.PixelFormat) int {
	switch format {
	case rl.UncompressedGrayscale, rl.UncompressedR32:
		return 1
	case rl.UncompressedGrayAlpha:
		return 2
	case rl.UncompressedR5g6b5, rl.UncompressedR8g8b8, rl.UncompressedR32g32b32:
		return 3
	case rl.UncompressedR5g5b5a1, rl.UncompressedR4g4b4a4, rl.UncompressedR8g8b8a8, rl.UncompressedR32g32b32a32:
		return 4
	}
	return 0
}
