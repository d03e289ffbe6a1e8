package faces

// DefaultSpecs is the standard face set every built-in theme supports. The
// palette names it references are part of the theme contract: presets must
// define them.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: "default", Foreground: "fg", Background: "bg"},
		{Name: "fringe", Foreground: "fg-alt", Background: "fringe"},
		{Name: "region", Background: "region"},
		{Name: "highlight", Foreground: "base0", Background: "highlight"},
		{Name: "shadow", Foreground: "base5"},
		{Name: "link", Foreground: "highlight", Bold: true, Underline: true},
		{Name: "minibuffer-prompt", Foreground: "highlight"},

		{Name: "comment", Foreground: "comments"},
		{Name: "doc-comment", Foreground: "doc-comments", Italic: true},
		{Name: "keyword", Foreground: "keywords"},
		{Name: "builtin", Foreground: "builtin"},
		{Name: "string", Foreground: "strings"},
		{Name: "function-name", Foreground: "functions"},
		{Name: "variable-name", Foreground: "variables"},
		{Name: "constant", Foreground: "constants"},
		{Name: "type", Foreground: "type"},

		{Name: "error", Foreground: "error", Bold: true},
		{Name: "warning", Foreground: "warning", Bold: true},
		{Name: "success", Foreground: "success", Bold: true},

		{Name: "line-number", Foreground: "base5"},
		{Name: "mode-line", Foreground: "fg", Background: "modeline-bg"},
		{Name: "mode-line-inactive", Foreground: "fg-alt", Background: "modeline-bg-inactive"},
		{Name: "vertical-border", Foreground: "vertical-bar"},
	}
}
