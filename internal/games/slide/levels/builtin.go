package levels

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed campaigns/*.yaml
var builtinFS embed.FS

// BuiltinIDs returns the IDs of the embedded campaigns, sorted.
func BuiltinIDs() []string {
	entries, err := builtinFS.ReadDir("campaigns")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids
}

// Builtin loads an embedded campaign by ID.
func Builtin(id string) (*Campaign, error) {
	data, err := builtinFS.ReadFile("campaigns/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: no builtin campaign %q", id)
	}

	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: builtin campaign %q: %w", id, err)
	}
	if c.id != id {
		return nil, fmt.Errorf("levels: builtin campaign file %q declares id %q", id, c.id)
	}
	return c, nil
}

// MustBuiltin loads an embedded campaign and panics on failure.
// Intended for package initialization, where a broken embed is a build defect.
func MustBuiltin(id string) *Campaign {
	c, err := Builtin(id)
	if err != nil {
		panic(err)
	}
	return c
}
