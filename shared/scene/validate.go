package scene

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownShape     = errors.New("forma desconhecida")
	ErrTooManyLights    = errors.New("excesso de luzes")
	ErrTooManyTextures  = errors.New("excesso de texturas")
	ErrDuplicateTexture = errors.New("textura duplicada")
	ErrUnknownTexture   = errors.New("textura não declarada")
	ErrUnknownMaterial  = errors.New("material não declarado")
	ErrNoAppearance     = errors.New("objeto sem cor nem textura")
	ErrInvalidMaterial  = errors.New("material inválido")
	ErrUnnamed          = errors.New("nome vazio")
)

// Validate verifica a consistência da cena. Todos os problemas são reunidos num único erro.
func (s *Scene) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("cena: %w", ErrUnnamed))
	}
	if len(s.Lights) > MaxLights {
		errs = append(errs, fmt.Errorf("%w: %d (máximo %d)", ErrTooManyLights, len(s.Lights), MaxLights))
	}
	if len(s.Textures) > MaxTextures {
		errs = append(errs, fmt.Errorf("%w: %d (máximo %d)", ErrTooManyTextures, len(s.Textures), MaxTextures))
	}

	textures := make(map[string]bool)
	for _, t := range s.Textures {
		if t.Tag == "" {
			errs = append(errs, fmt.Errorf("textura %q: %w", t.File, ErrEmptyTag))
			continue
		}
		if textures[t.Tag] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateTexture, t.Tag))
		}
		textures[t.Tag] = true
	}

	materials := make(map[string]bool)
	for _, m := range s.Materials {
		if m.Tag == "" {
			errs = append(errs, fmt.Errorf("material: %w", ErrEmptyTag))
			continue
		}
		if materials[m.Tag] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateMaterial, m.Tag))
		}
		if m.Shininess < 0 || m.AmbientStrength < 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidMaterial, m.Tag))
		}
		materials[m.Tag] = true
	}
	if s.DefaultMaterial != "" && !materials[s.DefaultMaterial] {
		errs = append(errs, fmt.Errorf("material padrão: %w: %s", ErrUnknownMaterial, s.DefaultMaterial))
	}

	for i, o := range s.Objects {
		label := o.Name
		if label == "" {
			errs = append(errs, fmt.Errorf("objeto #%d: %w", i, ErrUnnamed))
			label = fmt.Sprintf("#%d", i)
		}
		if !o.Shape.Valid() {
			errs = append(errs, fmt.Errorf("objeto %s: %w: %q", label, ErrUnknownShape, o.Shape))
		}
		if o.Texture != "" && !textures[o.Texture] {
			errs = append(errs, fmt.Errorf("objeto %s: %w: %s", label, ErrUnknownTexture, o.Texture))
		}
		if o.Material != "" && !materials[o.Material] {
			errs = append(errs, fmt.Errorf("objeto %s: %w: %s", label, ErrUnknownMaterial, o.Material))
		}
		if o.Texture == "" && o.Color == nil {
			errs = append(errs, fmt.Errorf("objeto %s: %w", label, ErrNoAppearance))
		}
	}

	return errors.Join(errs...)
}
