package session

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const themeKey = "theme"

// LoadTheme reads the preference from the store. Anything missing or
// unrecognized falls back to light.
func LoadTheme(store *Store) Theme {
	var raw string
	if store.Load(themeKey, &raw) {
		if t := Theme(raw); t == ThemeLight || t == ThemeDark {
			return t
		}
	}
	return ThemeLight
}

// SaveTheme persists the preference, best-effort.
func SaveTheme(store *Store, t Theme) {
	_ = store.Save(themeKey, string(t))
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
