package plotpage

// Theme selects a page color scheme.
type Theme string

const (
	// ThemeLight is the light color scheme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color scheme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds the styling values a theme contributes to pages
// and charts.
type ThemeConfig struct {
	Background    string
	Surface       string
	Border        string
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	Accent        string

	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// EChartsTheme names a built-in echarts theme, empty for default.
	EChartsTheme string
}

// GetThemeConfig returns the configuration for a theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

// Palette returns the series colors for a theme.
func Palette(theme Theme) []string {
	if theme == ThemeDark {
		return darkPalette
	}

	return lightPalette
}

var lightTheme = ThemeConfig{
	Background:    "#f8fafc", // slate-50.
	Surface:       "#ffffff",
	Border:        "#e2e8f0", // slate-200.
	TextPrimary:   "#0f172a", // slate-900.
	TextSecondary: "#334155", // slate-700.
	TextMuted:     "#64748b", // slate-500.
	Accent:        "#1d4ed8", // blue-700.

	ChartBackground: "transparent",
	ChartGrid:       "#e2e8f0",
	ChartAxis:       "#94a3b8", // slate-400.
	ChartText:       "#334155",
	ChartTextMuted:  "#64748b",

	EChartsTheme: "",
}

var darkTheme = ThemeConfig{
	Background:    "#020617", // slate-950.
	Surface:       "#0f172a", // slate-900.
	Border:        "#334155", // slate-700.
	TextPrimary:   "#f8fafc", // slate-50.
	TextSecondary: "#cbd5e1", // slate-300.
	TextMuted:     "#94a3b8", // slate-400.
	Accent:        "#60a5fa", // blue-400.

	ChartBackground: "transparent",
	ChartGrid:       "#334155",
	ChartAxis:       "#475569", // slate-600.
	ChartText:       "#cbd5e1",
	ChartTextMuted:  "#94a3b8",

	EChartsTheme: "",
}

var lightPalette = []string{
	"#1d4ed8", // blue-700.
	"#b91c1c", // red-700.
	"#15803d", // green-700.
	"#a16207", // yellow-700.
	"#7c3aed", // violet-600.
	"#0e7490", // cyan-700.
	"#be185d", // pink-700.
	"#4d7c0f", // lime-700.
}

var darkPalette = []string{
	"#60a5fa", // blue-400.
	"#f87171", // red-400.
	"#4ade80", // green-400.
	"#facc15", // yellow-400.
	"#a78bfa", // violet-400.
	"#22d3ee", // cyan-400.
	"#f472b6", // pink-400.
	"#a3e635", // lime-400.
}
