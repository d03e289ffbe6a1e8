package blend

// names maps recognized color names to their hex representation. Lookup is
// case-insensitive via Normalize.
var names = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"teal":    "#008080",
	"purple":  "#800080",
	"orange":  "#ffa500",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"plum":    "#dda0dd",
	"salmon":  "#fa8072",
	"khaki":   "#f0e68c",
	"tomato":  "#ff6347",
	"crimson": "#dc143c",
	"coral":   "#ff7f50",
}
