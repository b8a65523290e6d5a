package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		Register(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Track: "#3e3e3e",
		Range: "#4ec970",
		Tick:  "#6b6b6b",
		Label: "#d4d4d4",

		Thumb:       "#d4d4d4",
		ThumbFocus:  "#7C3AED",
		ThumbActive: "#e5c07b",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Track: "#504945",
		Range: "#b8bb26",
		Tick:  "#928374",
		Label: "#ebdbb2",

		Thumb:       "#ebdbb2",
		ThumbFocus:  "#fe8019",
		ThumbActive: "#fabd2f",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the cool arctic Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Track: "#3b4252",
		Range: "#a3be8c",
		Tick:  "#4c566a",
		Label: "#eceff4",

		Thumb:       "#eceff4",
		ThumbFocus:  "#88c0d0",
		ThumbActive: "#ebcb8b",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thCatppuccinTheme returns the Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Foreground: "#cdd6f4",
		Dim:        "#6c7086",
		Accent:     "#cba6f7",

		Track: "#313244",
		Range: "#a6e3a1",
		Tick:  "#6c7086",
		Label: "#cdd6f4",

		Thumb:       "#cdd6f4",
		ThumbFocus:  "#cba6f7",
		ThumbActive: "#f9e2af",

		HelpKey:  "#cba6f7",
		HelpDesc: "#6c7086",
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Track: "#44475a",
		Range: "#50fa7b",
		Tick:  "#6272a4",
		Label: "#f8f8f2",

		Thumb:       "#f8f8f2",
		ThumbFocus:  "#bd93f9",
		ThumbActive: "#f1fa8c",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Track: "#292e42",
		Range: "#9ece6a",
		Tick:  "#565f89",
		Label: "#c0caf5",

		Thumb:       "#c0caf5",
		ThumbFocus:  "#7aa2f7",
		ThumbActive: "#e0af68",

		HelpKey:  "#7aa2f7",
		HelpDesc: "#565f89",
	}
}
