package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name  string      `toml:"name"`
	Base  thTOMLBase  `toml:"base"`
	Track thTOMLTrack `toml:"track"`
	Thumb thTOMLThumb `toml:"thumb"`
	Help  thTOMLHelp  `toml:"help"`
}

type thTOMLBase struct {
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLTrack struct {
	Track string `toml:"track"`
	Range string `toml:"range"`
	Tick  string `toml:"tick"`
	Label string `toml:"label"`
}

type thTOMLThumb struct {
	Normal string `toml:"normal"`
	Focus  string `toml:"focus"`
	Active string `toml:"active"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Track: tt.Track.Track,
		Range: tt.Track.Range,
		Tick:  tt.Track.Tick,
		Label: tt.Track.Label,

		Thumb:       tt.Thumb.Normal,
		ThumbFocus:  tt.Thumb.Focus,
		ThumbActive: tt.Thumb.Active,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Track: thTOMLTrack{
			Track: t.Track,
			Range: t.Range,
			Tick:  t.Tick,
			Label: t.Label,
		},
		Thumb: thTOMLThumb{
			Normal: t.Thumb,
			Focus:  t.ThumbFocus,
			Active: t.ThumbActive,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color field by its TOML-ish name.
func thColorFields(t Theme) map[string]string {
	return map[string]string{
		"foreground":   t.Foreground,
		"dim":          t.Dim,
		"accent":       t.Accent,
		"track":        t.Track,
		"range":        t.Range,
		"tick":         t.Tick,
		"label":        t.Label,
		"thumb":        t.Thumb,
		"thumb_focus":  t.ThumbFocus,
		"thumb_active": t.ThumbActive,
		"help_key":     t.HelpKey,
		"help_desc":    t.HelpDesc,
	}
}

// thValidateTheme checks that all required fields are present and that
// every color is valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for field, value := range thColorFields(t) {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
