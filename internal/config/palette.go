package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/validate"
)

// Palette is the on-disk palette format:
//
//	max: 24
//	brackets:
//	  - {min: 0, color: "#eeeeee"}
//	  - {min: 1, color: "#c6e48b"}
type Palette struct {
	Max      int            `yaml:"max"`
	Brackets model.Brackets `yaml:"brackets"`
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{Max: model.DefaultMaxCount, Brackets: model.DefaultBrackets()}
}

// Validate checks the brackets and that max is above the darkest bracket.
func (p Palette) Validate() error {
	if err := p.Brackets.Validate(); err != nil {
		return err
	}
	for _, b := range p.Brackets {
		if err := validate.HexColor(b.Color); err != nil {
			return err
		}
	}
	if err := validate.InRange("max", p.Max, 1, validate.MaxCountLimit); err != nil {
		return err
	}
	if p.Max < p.Brackets.Darkest() {
		return errors.Wrapf(errors.ErrInvalidPalette, "max %d is below the darkest bracket %d", p.Max, p.Brackets.Darkest())
	}
	return nil
}

// ParsePalette decodes and validates a YAML palette. A missing max falls
// back to defaultMax.
func ParsePalette(data []byte, defaultMax int) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, errors.Wrap(errors.ErrInvalidPalette, err.Error())
	}
	if p.Max == 0 {
		p.Max = defaultMax
	}
	if err := p.Validate(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// LoadPalette resolves the palette for c: the YAML file named by
// Canvas.PaletteFile, or the built-in palette. Canvas.MaxCount fills in a
// palette without max.
func (c *RuntimeConfig) LoadPalette() (Palette, error) {
	if c.Canvas.PaletteFile == "" {
		p := DefaultPalette()
		p.Max = c.Canvas.MaxCount
		return p, p.Validate()
	}

	data, err := os.ReadFile(c.Canvas.PaletteFile)
	if err != nil {
		return Palette{}, errors.NewSystemErrorWithOp("load palette", "cannot read "+c.Canvas.PaletteFile, err)
	}
	return ParsePalette(data, c.Canvas.MaxCount)
}
