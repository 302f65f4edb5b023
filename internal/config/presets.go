package config

import "sort"

var Presets = map[string]*Config{
	"classroom": {
		Size: 2, Operation: "add", Theme: "minimal", Precision: 0, Step: 1,
		Left: "example-a", Right: "example-b",
	},
	"graphics": {
		Size: 4, Operation: "mul", Theme: "cyberpunk", Precision: 2, Step: 0.1,
		Left: "scale2", Right: "identity",
	},
	"compact": {
		Size: 3, Operation: "sub", Theme: "ocean", Precision: 1, Step: 0.5,
		Left: "counting", Right: "identity",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
