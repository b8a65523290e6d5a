package config

// Preset returns the slider settings for a named preset. Unknown names
// report false.
func Preset(name string) (SliderConfig, bool) {
	switch name {
	case "range":
		return rangePreset(), true
	case "single":
		return singlePreset(), true
	case "triple":
		return triplePreset(), true
	case "quartiles":
		return quartilesPreset(), true
	}
	return SliderConfig{}, false
}

// PresetNames lists the known presets.
func PresetNames() []string {
	return []string{"quartiles", "range", "single", "triple"}
}

// applyPreset fills the unset fields of s from its preset. Explicit handles
// replace the preset's handles entirely.
func applyPreset(s SliderConfig) SliderConfig {
	p, ok := Preset(s.Preset)
	if !ok {
		return s
	}
	if s.Title == "" {
		s.Title = p.Title
	}
	if s.Min == nil {
		s.Min = p.Min
	}
	if s.Max == nil {
		s.Max = p.Max
	}
	if s.StepBetween == 0 {
		s.StepBetween = p.StepBetween
	}
	if len(s.Handles) == 0 {
		s.Handles = p.Handles
	}
	return s
}

// rangePreset is a low/high pair on [0, 100].
func rangePreset() SliderConfig {
	return SliderConfig{
		Title: "Range",
		Handles: []HandleConfig{
			{ID: "low", Label: "Low", Value: "25"},
			{ID: "high", Label: "High", Value: "75"},
		},
	}
}

// singlePreset is one handle in the middle of [0, 100].
func singlePreset() SliderConfig {
	return SliderConfig{
		Title: "Value",
		Handles: []HandleConfig{
			{ID: "value", Label: "Value", Value: "50"},
		},
	}
}

// triplePreset is three handles kept at least 5 apart.
func triplePreset() SliderConfig {
	return SliderConfig{
		Title:       "Bands",
		StepBetween: 5,
		Handles: []HandleConfig{
			{ID: "a", Value: "10"},
			{ID: "b", Value: "50"},
			{ID: "c", Value: "90"},
		},
	}
}

// quartilesPreset marks the three quartiles of a percentage scale.
func quartilesPreset() SliderConfig {
	lo, hi := 0.0, 100.0
	return SliderConfig{
		Title: "Quartiles",
		Min:   &lo,
		Max:   &hi,
		Handles: []HandleConfig{
			{ID: "q1", Label: "Q1", Value: "25"},
			{ID: "q2", Label: "Median", Value: "50"},
			{ID: "q3", Label: "Q3", Value: "75"},
		},
	}
}
