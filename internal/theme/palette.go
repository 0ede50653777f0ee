package theme

// Palette contains the resolved styling primitives for one preference.
type Palette struct {
	Key             Preference
	Label           string
	HTMLClass       string
	BodyClass       string
	SurfaceClass    string
	SurfaceAltClass string
	BorderClass     string
	AccentTextClass string
	MutedTextClass  string
	// Icon names the glyph the toggle shows: the scheme a click switches to.
	Icon        string
	ToggleLabel string
}

var catalogue = map[Preference]Palette{
	Light: {
		Key:             Light,
		Label:           "Light",
		HTMLClass:       "light",
		BodyClass:       "min-h-screen bg-slate-50 text-slate-900 transition-colors duration-500",
		SurfaceClass:    "bg-white",
		SurfaceAltClass: "bg-slate-50",
		BorderClass:     "border-slate-200",
		AccentTextClass: "text-blue-600",
		MutedTextClass:  "text-slate-600",
		Icon:            "moon",
		ToggleLabel:     "Switch to dark theme",
	},
	Dark: {
		Key:             Dark,
		Label:           "Dark",
		HTMLClass:       "dark",
		BodyClass:       "min-h-screen bg-slate-900 text-slate-100 transition-colors duration-500",
		SurfaceClass:    "bg-slate-800",
		SurfaceAltClass: "bg-slate-900",
		BorderClass:     "border-slate-700",
		AccentTextClass: "text-blue-400",
		MutedTextClass:  "text-slate-300",
		Icon:            "sun",
		ToggleLabel:     "Switch to light theme",
	},
}

// Resolve returns the palette registered for p, falling back to the default.
func Resolve(p Preference) Palette {
	if palette, ok := catalogue[p]; ok {
		return palette
	}
	return catalogue[Default]
}

// ClassSwaps maps each styling class of from to the class that replaces it
// in to, for restyling a rendered page in place. The body and html classes
// are not included.
func ClassSwaps(from, to Palette) map[string]string {
	pairs := [][2]string{
		{from.SurfaceClass, to.SurfaceClass},
		{from.SurfaceAltClass, to.SurfaceAltClass},
		{from.BorderClass, to.BorderClass},
		{from.AccentTextClass, to.AccentTextClass},
		{from.MutedTextClass, to.MutedTextClass},
	}
	swaps := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if pair[0] == "" || pair[0] == pair[1] {
			continue
		}
		swaps[pair[0]] = pair[1]
	}
	return swaps
}
