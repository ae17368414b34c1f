package colorutils

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// SrgbVal returns the color as an upper-case RRGGBB string, the form DrawingML
// expects in a:srgbClr/@val.
func SrgbVal(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}
