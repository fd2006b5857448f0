package memory

// cssKeywords maps CSS color keywords to normalized rgb() strings, the same
// shape a host environment would hand back. This is the common subset; hosts
// needing the full CSS named-color table can Save the rest.
var cssKeywords = map[string]string{
	"black":   "rgb(0 0 0)",
	"silver":  "rgb(192 192 192)",
	"gray":    "rgb(128 128 128)",
	"grey":    "rgb(128 128 128)",
	"white":   "rgb(255 255 255)",
	"maroon":  "rgb(128 0 0)",
	"red":     "rgb(255 0 0)",
	"purple":  "rgb(128 0 128)",
	"fuchsia": "rgb(255 0 255)",
	"magenta": "rgb(255 0 255)",
	"green":   "rgb(0 128 0)",
	"lime":    "rgb(0 255 0)",
	"olive":   "rgb(128 128 0)",
	"yellow":  "rgb(255 255 0)",
	"navy":    "rgb(0 0 128)",
	"blue":    "rgb(0 0 255)",
	"teal":    "rgb(0 128 128)",
	"aqua":    "rgb(0 255 255)",
	"cyan":    "rgb(0 255 255)",

	"orange":        "rgb(255 165 0)",
	"gold":          "rgb(255 215 0)",
	"pink":          "rgb(255 192 203)",
	"hotpink":       "rgb(255 105 180)",
	"crimson":       "rgb(220 20 60)",
	"salmon":        "rgb(250 128 114)",
	"coral":         "rgb(255 127 80)",
	"tomato":        "rgb(255 99 71)",
	"chocolate":     "rgb(210 105 30)",
	"brown":         "rgb(165 42 42)",
	"indigo":        "rgb(75 0 130)",
	"violet":        "rgb(238 130 238)",
	"orchid":        "rgb(218 112 214)",
	"rebeccapurple": "rgb(102 51 153)",
	"slateblue":     "rgb(106 90 205)",
	"royalblue":     "rgb(65 105 225)",
	"steelblue":     "rgb(70 130 180)",
	"skyblue":       "rgb(135 206 235)",
	"turquoise":     "rgb(64 224 208)",
	"seagreen":      "rgb(46 139 87)",
	"forestgreen":   "rgb(34 139 34)",
	"olivedrab":     "rgb(107 142 35)",
	"khaki":         "rgb(240 230 140)",
	"tan":           "rgb(210 180 140)",
	"beige":         "rgb(245 245 220)",
	"ivory":         "rgb(255 255 240)",
	"lavender":      "rgb(230 230 250)",
	"plum":          "rgb(221 160 221)",
	"transparent":   "rgba(0 0 0 0)",
}
