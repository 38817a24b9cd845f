package gradient

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vedit"
)

// Preset errors.
var (
	ErrTooFewStops   = errors.New("gradient: preset needs at least two stops")
	ErrOffsetRange   = errors.New("gradient: preset offset outside [0, 1]")
	ErrPresetNoStops = errors.New("gradient: preset has no stops section")
)

// Preset is a named gradient as stored in a YAML file:
//
//	name: sunset
//	stops:
//	  - offset: 0
//	    color: "#ff8800"
//	  - offset: 1
//	    color: "#20106080"
type Preset struct {
	Name  string       `yaml:"name"`
	Stops []PresetStop `yaml:"stops"`
}

// PresetStop is one stop of a Preset. Color is #RRGGBB or #RRGGBBAA.
type PresetStop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// ParsePreset decodes and validates a YAML preset.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("gradient: parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPreset reads a YAML preset from r and builds its collection.
func LoadPreset(r io.Reader) (*Preset, *Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("gradient: read preset: %w", err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, nil, err
	}
	c, err := p.Collection()
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}

// Validate checks stop count, offsets and colors.
func (p *Preset) Validate() error {
	if p.Stops == nil {
		return ErrPresetNoStops
	}
	if len(p.Stops) < MinStops {
		return fmt.Errorf("%w: got %d", ErrTooFewStops, len(p.Stops))
	}
	for i, s := range p.Stops {
		if s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%w: stop %d has offset %g", ErrOffsetRange, i, s.Offset)
		}
		if _, err := vedit.ParseHex(s.Color); err != nil {
			return fmt.Errorf("gradient: preset stop %d: %w", i, err)
		}
	}
	return nil
}

// Collection builds a Collection from the preset's stops.
func (p *Preset) Collection() (*Collection, error) {
	stops := make([]Stop, 0, len(p.Stops))
	for i, s := range p.Stops {
		c, err := vedit.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("gradient: preset stop %d: %w", i, err)
		}
		stops = append(stops, Stop{Offset: s.Offset, Color: c})
	}
	return NewCollection(stops...), nil
}
