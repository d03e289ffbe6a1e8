package theme

import "sort"

// Presets contains all built-in themes, keyed by name.
var Presets = map[string]Theme{
	"doom-one":     DoomOne,
	"doom-dracula": DoomDracula,
	"doom-nord":    DoomNord,
}

// PresetNames returns the built-in theme names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DoomOne is the flagship dark theme, ported from the Atom One Dark
// palette. Tiered entries carry a true-color value, a 256-color
// approximation, and a basic terminal color; an empty element means the
// color simply is not rendered at that tier.
var DoomOne = New("doom-one", []Def{
	// Base palette
	{"bg", Tiered("#282c34", "#262626", "")},
	{"bg-alt", Tiered("#21242b", "#1c1c1c", "")},
	{"fg", Tiered("#bbc2cf", "#bcbcbc", "white")},
	{"fg-alt", Tiered("#5b6268", "#5f5f5f", "white")},

	{"base0", Tiered("#1b2229", "#121212", "black")},
	{"base1", Tiered("#1c1f24", "#1c1c1c", "#262626")},
	{"base2", Tiered("#202328", "#262626", "#303030")},
	{"base3", Tiered("#23272e", "#3a3a3a", "#3a3a3a")},
	{"base4", Tiered("#3f444a", "#444444", "#444444")},
	{"base5", Tiered("#5b6268", "#585858", "#585858")},
	{"base6", Tiered("#73797e", "#626262", "#626262")},
	{"base7", Tiered("#9ca0a4", "#767676", "#767676")},
	{"base8", Tiered("#dfdfdf", "#dadada", "#dadada")},

	{"grey", Ref("base4")},
	{"red", Tiered("#ff6c6b", "#ff6655", "red")},
	{"orange", Tiered("#da8548", "#dd8844", "orange")},
	{"green", Tiered("#98be65", "#99bb66", "green")},
	{"teal", Tiered("#4db5bd", "#44b9b1", "teal")},
	{"yellow", Tiered("#ecbe7b", "#ecbe7b", "yellow")},
	{"blue", Tiered("#51afef", "#51afef", "blue")},
	{"dark-blue", Tiered("#2257a0", "#2257a0", "blue")},
	{"magenta", Tiered("#c678dd", "#c678dd", "magenta")},
	{"violet", Tiered("#a9a1e1", "#af87d7", "magenta")},
	{"cyan", Tiered("#46d9ff", "#46d9ff", "cyan")},
	{"dark-cyan", Tiered("#5699af", "#5f8787", "cyan")},

	// Derived colors
	{"highlight", Ref("blue")},
	{"vertical-bar", Darken(Ref("bg"), 0.1)},
	{"selection", Ref("dark-blue")},
	{"builtin", Ref("magenta")},
	{"comments", Ref("base5")},
	{"doc-comments", Lighten(Ref("base5"), 0.25)},
	{"constants", Ref("violet")},
	{"functions", Ref("magenta")},
	{"keywords", Ref("blue")},
	{"methods", Ref("cyan")},
	{"operators", Ref("blue")},
	{"type", Ref("yellow")},
	{"strings", Ref("green")},
	{"variables", Lighten(Ref("magenta"), 0.4)},
	{"numbers", Ref("orange")},
	{"region", Darken(Ref("dark-blue"), 0.15)},
	{"error", Ref("red")},
	{"warning", Ref("yellow")},
	{"success", Ref("green")},
	{"vc-modified", Ref("orange")},
	{"vc-added", Ref("green")},
	{"vc-deleted", Ref("red")},
	{"modeline-bg", Darken(Ref("bg-alt"), 0.15)},
	{"modeline-bg-inactive", Darken(Ref("bg-alt"), 0.1)},
	{"fringe", Blend(Ref("bg"), Ref("bg-alt"), 0.5)},
})

// DoomDracula follows the classic Dracula palette.
var DoomDracula = New("doom-dracula", []Def{
	{"bg", Tiered("#282a36", "#262626", "")},
	{"bg-alt", Tiered("#1e2029", "#1c1c1c", "")},
	{"fg", Tiered("#f8f8f2", "#ffffff", "white")},
	{"fg-alt", Tiered("#e2e2dc", "#e4e4e4", "white")},

	{"base0", Tiered("#1e2029", "#121212", "black")},
	{"base4", Tiered("#565761", "#585858", "#585858")},
	{"base5", Tiered("#6272a4", "#5f5f87", "#585858")},
	{"base8", Tiered("#f8f8f2", "#ffffff", "#dadada")},

	{"grey", Ref("base4")},
	{"red", Tiered("#ff5555", "#ff6655", "red")},
	{"orange", Tiered("#ffb86c", "#dd8844", "orange")},
	{"green", Tiered("#50fa7b", "#99bb66", "green")},
	{"yellow", Tiered("#f1fa8c", "#ecbe7b", "yellow")},
	{"blue", Tiered("#61bfff", "#51afef", "blue")},
	{"dark-blue", Tiered("#0189cc", "#2257a0", "blue")},
	{"magenta", Tiered("#ff79c6", "#c678dd", "magenta")},
	{"violet", Tiered("#bd93f9", "#af87d7", "magenta")},
	{"cyan", Tiered("#8be9fd", "#46d9ff", "cyan")},
	{"dark-cyan", Tiered("#8be9fd", "#5f8787", "cyan")},

	{"highlight", Ref("violet")},
	{"vertical-bar", Darken(Ref("bg"), 0.1)},
	{"selection", Lighten(Ref("bg"), 0.1)},
	{"builtin", Ref("orange")},
	{"comments", Ref("base5")},
	{"doc-comments", Lighten(Ref("base5"), 0.25)},
	{"constants", Ref("cyan")},
	{"functions", Ref("green")},
	{"keywords", Ref("magenta")},
	{"methods", Ref("green")},
	{"operators", Ref("violet")},
	{"type", Ref("violet")},
	{"strings", Ref("yellow")},
	{"variables", Lighten(Ref("magenta"), 0.6)},
	{"numbers", Ref("violet")},
	{"region", Blend(Ref("violet"), Ref("bg"), 0.3)},
	{"error", Ref("red")},
	{"warning", Ref("yellow")},
	{"success", Ref("green")},
	{"vc-modified", Ref("orange")},
	{"vc-added", Ref("green")},
	{"vc-deleted", Ref("red")},
	{"modeline-bg", Darken(Ref("bg-alt"), 0.1)},
	{"modeline-bg-inactive", Ref("bg-alt")},
	{"fringe", Ref("bg-alt")},
})

// DoomNord uses the arctic Nord palette.
var DoomNord = New("doom-nord", []Def{
	{"bg", Tiered("#2e3440", "#303030", "")},
	{"bg-alt", Tiered("#272c36", "#262626", "")},
	{"fg", Tiered("#eceff4", "#eeeeee", "white")},
	{"fg-alt", Tiered("#d8dee9", "#dadada", "white")},

	{"base0", Tiered("#191c25", "#121212", "black")},
	{"base4", Tiered("#434c5e", "#444444", "#444444")},
	{"base5", Tiered("#4c566a", "#4e4e4e", "#585858")},
	{"base8", Tiered("#f0f4fc", "#ffffff", "#dadada")},

	{"grey", Ref("base4")},
	{"red", Tiered("#bf616a", "#bf616a", "red")},
	{"orange", Tiered("#d08770", "#d7875f", "orange")},
	{"green", Tiered("#a3be8c", "#afbe8c", "green")},
	{"teal", Tiered("#8fbcbb", "#87afaf", "teal")},
	{"yellow", Tiered("#ebcb8b", "#ffd787", "yellow")},
	{"blue", Tiered("#81a1c1", "#87afd7", "blue")},
	{"dark-blue", Tiered("#5e81ac", "#5f87af", "blue")},
	{"magenta", Tiered("#b48ead", "#d787d7", "magenta")},
	{"violet", Tiered("#5d80ae", "#5f87af", "magenta")},
	{"cyan", Tiered("#88c0d0", "#87d7d7", "cyan")},
	{"dark-cyan", Tiered("#507681", "#5f8787", "cyan")},

	{"highlight", Ref("blue")},
	{"vertical-bar", Darken(Ref("bg"), 0.1)},
	{"selection", Lighten(Ref("bg"), 0.1)},
	{"builtin", Ref("teal")},
	{"comments", Lighten(Ref("base5"), 0.2)},
	{"doc-comments", Lighten(Ref("base5"), 0.35)},
	{"constants", Ref("magenta")},
	{"functions", Ref("cyan")},
	{"keywords", Ref("blue")},
	{"methods", Ref("teal")},
	{"operators", Ref("blue")},
	{"type", Ref("teal")},
	{"strings", Ref("green")},
	{"variables", Ref("base8")},
	{"numbers", Ref("orange")},
	{"region", Blend(Ref("teal"), Ref("bg"), 0.2)},
	{"error", Ref("red")},
	{"warning", Ref("yellow")},
	{"success", Ref("green")},
	{"vc-modified", Ref("orange")},
	{"vc-added", Ref("green")},
	{"vc-deleted", Ref("red")},
	{"modeline-bg", Darken(Ref("bg-alt"), 0.1)},
	{"modeline-bg-inactive", Ref("bg-alt")},
	{"fringe", Ref("bg-alt")},
})
