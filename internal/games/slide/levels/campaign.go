package levels

import (
	"fmt"

	"github.com/vovakirdan/slide/internal/games/slide/engine"
)

// Campaign is an immutable ordered sequence of level descriptors.
// Level numbers are 1-based.
type Campaign struct {
	id     string
	title  string
	levels []Descriptor
	path   string
}

// NewCampaign creates a campaign from validated descriptors.
func NewCampaign(id, title string, descriptors []Descriptor) (*Campaign, error) {
	if id == "" {
		return nil, fmt.Errorf("levels: campaign id is required")
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("levels: campaign %q has no levels", id)
	}

	for i, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("levels: campaign %q level %d: %w", id, i+1, err)
		}
	}

	copied := make([]Descriptor, len(descriptors))
	copy(copied, descriptors)
	if title == "" {
		title = id
	}
	return &Campaign{id: id, title: title, levels: copied}, nil
}

// ID returns the campaign identifier.
func (c *Campaign) ID() string { return c.id }

// Title returns the display name.
func (c *Campaign) Title() string { return c.title }

// Path returns the file the campaign was loaded from, if any.
func (c *Campaign) Path() string { return c.path }

// Count returns the number of levels.
func (c *Campaign) Count() int { return len(c.levels) }

// Level returns the descriptor for a 1-based level number.
func (c *Campaign) Level(number int) (Descriptor, bool) {
	if number < 1 || number > len(c.levels) {
		return Descriptor{}, false
	}
	return c.levels[number-1], true
}

// NewLevel builds a fresh engine level for a 1-based level number.
func (c *Campaign) NewLevel(number int) (*engine.Level, bool) {
	d, ok := c.Level(number)
	if !ok {
		return nil, false
	}
	return d.NewLevel(), true
}

// Names returns the display names of all levels.
// Unnamed levels are called "Level N".
func (c *Campaign) Names() []string {
	names := make([]string, len(c.levels))
	for i, d := range c.levels {
		names[i] = d.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}
	return names
}

// Pars returns the designer move counts of all levels.
func (c *Campaign) Pars() []int {
	pars := make([]int, len(c.levels))
	for i, d := range c.levels {
		pars[i] = d.MovePar()
	}
	return pars
}
