package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCampaign represents the YAML structure for a campaign file.
type YAMLCampaign struct {
	ID     string       `yaml:"id"`
	Title  string       `yaml:"title"`
	Levels []Descriptor `yaml:"levels"`
}

// ParseYAML parses and validates a YAML campaign file.
func ParseYAML(data []byte) (*Campaign, error) {
	var yc YAMLCampaign
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	return NewCampaign(yc.ID, yc.Title, yc.Levels)
}

// MarshalYAML encodes a campaign back to the file format.
func MarshalYAML(c *Campaign) ([]byte, error) {
	yc := YAMLCampaign{
		ID:     c.id,
		Title:  c.title,
		Levels: c.levels,
	}
	data, err := yaml.Marshal(&yc)
	if err != nil {
		return nil, fmt.Errorf("levels: yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
