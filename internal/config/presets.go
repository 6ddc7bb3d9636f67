package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/ui"
	"gopkg.in/yaml.v3"
)

type presetFile struct {
	Windows []presetEntry `yaml:"windows"`
}

type presetEntry struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	Title     string     `yaml:"title"`
	Body      string     `yaml:"body"`
	Singleton *bool      `yaml:"singleton"`
	InitialX  coordValue `yaml:"initial_x"`
	InitialY  coordValue `yaml:"initial_y"`
}

// coordValue accepts a number or "center".
type coordValue struct {
	drag.Coord
}

func (c *coordValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coordinate must be a number or \"center\"", value.Line)
	}
	parsed, err := drag.ParseCoord(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.Coord = parsed
	return nil
}

// LoadPresets reads launcher presets from a YAML file.
func LoadPresets(path string) ([]ui.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	presets, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("presets %s: %w", path, err)
	}
	return presets, nil
}

// ParsePresets decodes a preset document. Unknown fields and kinds are
// rejected. Presets are singletons unless they say otherwise.
func ParsePresets(data []byte) ([]ui.Preset, error) {
	var file presetFile
	if err := decodeStrictYAML(data, &file); err != nil {
		return nil, err
	}
	kinds := ui.PresetKinds()
	var lines []int
	presets := make([]ui.Preset, 0, len(file.Windows))
	for i, entry := range file.Windows {
		if entry.Kind == "" || !slices.Contains(kinds, entry.Kind) {
			if lines == nil {
				lines = kindLines(data)
			}
			line := 0
			if i < len(lines) {
				line = lines[i]
			}
			if entry.Kind == "" {
				return nil, fmt.Errorf("line %d: windows[%d]: kind is required", line, i)
			}
			return nil, fmt.Errorf("line %d: windows[%d]: unknown kind %q", line, i, entry.Kind)
		}
		singleton := true
		if entry.Singleton != nil {
			singleton = *entry.Singleton
		}
		presets = append(presets, ui.Preset{
			Name:      entry.Name,
			Kind:      entry.Kind,
			Title:     entry.Title,
			Body:      entry.Body,
			Singleton: singleton,
			InitialX:  entry.InitialX.Coord,
			InitialY:  entry.InitialY.Coord,
		})
	}
	return presets, nil
}

// kindLines returns, per entry of the windows list, the line of its kind
// value, or of the entry itself when it has none.
func kindLines(data []byte) []int {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	windows := mappingValue(doc.Content[0], "windows")
	if windows == nil || windows.Kind != yaml.SequenceNode {
		return nil
	}
	lines := make([]int, len(windows.Content))
	for i, item := range windows.Content {
		lines[i] = item.Line
		if kind := mappingValue(item, "kind"); kind != nil {
			lines[i] = kind.Line
		}
	}
	return lines
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
