package model

// Color tokens the admin UI palette offers.
var Palette = []string{
	"blue", "green", "purple", "orange", "red", "teal", "yellow", "pink",
}

// Icon tokens the admin UI icon picker offers.
var IconSet = []string{
	"cpu", "zap", "radio", "wifi", "battery", "wrench", "circuit-board", "lightbulb",
}

const (
	DefaultColor = "blue"
	DefaultIcon  = "cpu"

	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

func IsValidColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

func IsValidIcon(icon string) bool {
	for _, i := range IconSet {
		if i == icon {
			return true
		}
	}
	return false
}
