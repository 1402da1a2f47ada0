package render

// Theme is one of the fixed color palettes applied to every template.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Light     string
}

// DefaultTheme is used whenever the requested theme name is unknown.
const DefaultTheme = "blue"

var themes = map[string]Theme{
	"blue":   {Name: "blue", Primary: "#1d4ed8", Secondary: "#3b82f6", Light: "#e0f2fe"},
	"green":  {Name: "green", Primary: "#059669", Secondary: "#10b981", Light: "#d1fae5"},
	"purple": {Name: "purple", Primary: "#7c3aed", Secondary: "#8b5cf6", Light: "#ede9fe"},
	"orange": {Name: "orange", Primary: "#d97706", Secondary: "#f59e0b", Light: "#fef3c7"},
}

// ThemeByName returns the palette for name, falling back to blue for any
// unrecognized or empty name.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the available palette names.
func ThemeNames() []string {
	return []string{"blue", "green", "purple", "orange"}
}
