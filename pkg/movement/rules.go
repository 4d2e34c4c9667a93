package movement

import (
	"fmt"
	"strings"
)

// CartZoneName is the one type name that collects a cart and zone.
const CartZoneName = "dist. car."

// Cart and zone choices offered for CartZoneName movements. Zero means unset.
const (
	CartMin = 1
	CartMax = 26
	ZoneMin = 1
	ZoneMax = 11
)

// EditFallbackName replaces an edited movement name that trims to nothing.
const EditFallbackName = "Sin nombre"

// IsCartZoneType matches name against CartZoneName ignoring case and
// surrounding whitespace. The trailing period is significant.
func IsCartZoneType(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == CartZoneName
}

// ComposeComment prefixes raw with the cart and zone tags that are set. Cart
// comes before zone; the prefix and the trimmed comment are joined by " - ".
//
//	ComposeComment("", 3, 5)          == "Carro:3 Zona:5"
//	ComposeComment("broken box", 3, 0) == "Carro:3 - broken box"
func ComposeComment(raw string, cart, zone int) string {
	comment := strings.TrimSpace(raw)

	var parts []string
	if cart > 0 {
		parts = append(parts, fmt.Sprintf("Carro:%d", cart))
	}
	if zone > 0 {
		parts = append(parts, fmt.Sprintf("Zona:%d", zone))
	}
	if len(parts) == 0 {
		return comment
	}

	prefix := strings.Join(parts, " ")
	if comment == "" {
		return prefix
	}
	return prefix + " - " + comment
}

// ValidCart reports whether n is unset or one of the offered cart numbers.
func ValidCart(n int) bool {
	return n == 0 || (n >= CartMin && n <= CartMax)
}

// ValidZone reports whether n is unset or one of the offered zone numbers.
func ValidZone(n int) bool {
	return n == 0 || (n >= ZoneMin && n <= ZoneMax)
}

// EditedName trims name, falling back to EditFallbackName when empty.
func EditedName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return EditFallbackName
}
