package domain

// ThemePreference is the dark/light presentation choice.
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// ThemeFromDark maps the persisted boolean encoding onto a ThemePreference.
func ThemeFromDark(dark bool) ThemePreference {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether t is the dark theme. Anything that is not
// ThemeDark is treated as light.
func (t ThemePreference) IsDark() bool {
	return t == ThemeDark
}

// Toggled returns the opposite theme.
func (t ThemePreference) Toggled() ThemePreference {
	return ThemeFromDark(!t.IsDark())
}

func (t ThemePreference) String() string {
	if t.IsDark() {
		return string(ThemeDark)
	}
	return string(ThemeLight)
}
