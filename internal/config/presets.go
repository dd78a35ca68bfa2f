package config

import "sort"

var Presets = map[string]map[string]*Config{
	"impulse": {
		"single": {App: "impulse", Harmonics: 1},
		"pair":   {App: "impulse", Harmonics: 2},
		"full":   {App: "impulse", Harmonics: 6},
	},
	"asym": {
		"default": {App: "asym", Harmonics: 6},
	},
}

func GetPreset(app, preset string) *Config {
	appPresets, ok := Presets[app]
	if !ok {
		return nil
	}
	cfg, ok := appPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(app string) []string {
	appPresets, ok := Presets[app]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(appPresets))
	for name := range appPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's model fields onto c.
func (c *Config) Apply(p *Config) {
	if p == nil {
		return
	}
	if p.App != "" {
		c.App = p.App
	}
	if p.Harmonics != 0 {
		c.Harmonics = p.Harmonics
	}
}
