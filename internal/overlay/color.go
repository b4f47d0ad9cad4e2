package overlay

import (
	"fmt"
	"strconv"
)

// ParseHexColor parses an "RRGGBB" hex triple (no leading '#') into RGB
// components.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("font color must be a 6-digit hex triple, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid font color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8 & 0xff), uint8(v & 0xff), nil
}
