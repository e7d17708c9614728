// Package levels provides level descriptors, campaigns and the YAML level
// file format for the sliding-block puzzle.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/slide/internal/games/slide/engine"
)

// MaxSide is the largest supported grid dimension.
const MaxSide = 16

// descriptorValidate checks the struct tags of descriptors.
var descriptorValidate = validator.New()

// Descriptor is a single level record as authored in a campaign file.
type Descriptor struct {
	Name    string   `yaml:"name,omitempty"`
	Width   int      `yaml:"width" validate:"min=1,max=16"`
	Height  int      `yaml:"height" validate:"min=1,max=16"`
	Walls   [][2]int `yaml:"walls,omitempty"`
	Pieces  []int    `yaml:"pieces" validate:"min=1,dive,min=0"`
	Targets []int    `yaml:"targets,omitempty" validate:"dive,min=0"`
	Shape   []string `yaml:"shape,omitempty" validate:"dive,min=1"`
	Hands   []int    `yaml:"hands,omitempty" validate:"dive,min=0"`
	Par     int      `yaml:"par,omitempty" validate:"min=0"`
	Goal    int      `yaml:"goal,omitempty" validate:"min=0"`
	Info    string   `yaml:"info,omitempty"`
}

// MovePar returns the designer move count, accepting the older "goal" key.
func (d Descriptor) MovePar() int {
	if d.Par > 0 {
		return d.Par
	}
	return d.Goal
}

// Spec converts the descriptor to an engine level spec.
func (d Descriptor) Spec() engine.Spec {
	walls := make([]engine.Wall, len(d.Walls))
	for i, w := range d.Walls {
		walls[i] = engine.Wall{A: w[0], B: w[1]}
	}

	return engine.Spec{
		Width:   d.Width,
		Height:  d.Height,
		Walls:   walls,
		Pieces:  d.Pieces,
		Targets: d.Targets,
		Shape:   d.Shape,
		Hands:   d.Hands,
		Par:     d.MovePar(),
		Info:    d.Info,
	}
}

// NewLevel builds a fresh engine level from the descriptor.
func (d Descriptor) NewLevel() *engine.Level {
	return engine.NewLevel(d.Spec())
}

// Validate checks that the descriptor describes a playable level.
// All problems are reported together.
func (d Descriptor) Validate() error {
	if err := descriptorValidate.Struct(d); err != nil {
		return fmt.Errorf("invalid fields: %w", err)
	}

	grid := engine.NewGrid(d.Width, d.Height)
	shape := engine.NewShape(grid, d.Shape)
	var errs []error

	if len(d.Targets) > len(d.Pieces) {
		errs = append(errs, fmt.Errorf("%d targets but only %d pieces", len(d.Targets), len(d.Pieces)))
	}
	if len(d.Shape) > d.Height {
		errs = append(errs, fmt.Errorf("shape has %d rows, grid height is %d", len(d.Shape), d.Height))
	}

	for i, w := range d.Walls {
		if !grid.Contains(w[0]) || !grid.Contains(w[1]) {
			errs = append(errs, fmt.Errorf("wall %d %v: cell out of range", i, w))
			continue
		}
		if grid.Distance(w[0], w[1]) != 1 {
			errs = append(errs, fmt.Errorf("wall %d %v: cells are not adjacent", i, w))
		}
	}

	occupied := make(map[int]int, len(d.Pieces))
	for i, p := range d.Pieces {
		if !shape.IsPlayable(p) {
			errs = append(errs, fmt.Errorf("piece %d at %d: not a playable cell", i, p))
		}
		if other, dup := occupied[p]; dup {
			errs = append(errs, fmt.Errorf("pieces %d and %d share cell %d", other, i, p))
		}
		occupied[p] = i
	}

	for i, t := range d.Targets {
		if !shape.IsPlayable(t) {
			errs = append(errs, fmt.Errorf("target %d at %d: not a playable cell", i, t))
		}
	}

	for i, h := range d.Hands {
		if !shape.IsPlayable(h) {
			errs = append(errs, fmt.Errorf("hand %d at %d: not a playable cell", i, h))
		}
	}

	return errors.Join(errs...)
}
