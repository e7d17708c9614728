package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading campaign files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new campaign loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadFile loads a single campaign file.
func LoadFile(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// LoadAll recursively scans and loads all campaign files.
// Campaigns are sorted by ID. Files that fail to load are skipped and their
// errors returned joined alongside the campaigns that did load.
func (l *Loader) LoadAll() ([]*Campaign, error) {
	var campaigns []*Campaign
	var skipped []error

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		c, err := LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		campaigns = append(campaigns, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].id < campaigns[j].id
	})

	return campaigns, errors.Join(skipped...)
}

// LoadByID loads a specific campaign by ID.
func (l *Loader) LoadByID(id string) (*Campaign, error) {
	campaigns, err := l.LoadAll()
	for _, c := range campaigns {
		if c.id == id {
			return c, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("levels: campaign not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
