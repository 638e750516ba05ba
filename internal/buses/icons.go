package buses

import "bookeasy/pkg/logger"

// iconPlaceholder is what an unresolvable icon name falls back to; a
// missing glyph must never fail the screen.
const iconPlaceholder = "HelpCircle"

var amenityIcons = map[string]string{
	"wifi":          "Wifi",
	"charging":      "Power",
	"entertainment": "Tv",
	"food":          "Coffee",
}

// AmenityIcon resolves an amenity key to the icon name rendered next to
// it. Unknown names resolve to the placeholder and are logged.
func AmenityIcon(name string) string {
	if icon, ok := amenityIcons[name]; ok {
		return icon
	}
	logger.GetDefault().LogIconFallback(name)
	return iconPlaceholder
}

// AmenityIcons lists the icon names for everything a bus offers, in a
// stable order.
func AmenityIcons(a Amenities) []string {
	var icons []string
	if a.Wifi {
		icons = append(icons, AmenityIcon("wifi"))
	}
	if a.Charging {
		icons = append(icons, AmenityIcon("charging"))
	}
	if a.Entertainment {
		icons = append(icons, AmenityIcon("entertainment"))
	}
	if a.Food {
		icons = append(icons, AmenityIcon("food"))
	}
	return icons
}
