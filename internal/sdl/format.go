package sdl

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agentic-research/povforge/internal/scene"
)

// snakeCase converts a CamelCase field identifier to the SDL naming
// convention: "LookAt" -> "look_at", "Corner1" -> "corner1". Digits pass
// through unchanged. Idempotent on input that is already snake_case.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatFloat renders the shortest decimal representation that round-trips:
// 5 -> "5", 0.4 -> "0.4". POV-Ray accepts both integer and decimal forms.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatTriple renders three components as "<x,y,z>".
func formatTriple(x, y, z float64) string {
	return "<" + formatFloat(x) + "," + formatFloat(y) + "," + formatFloat(z) + ">"
}

func formatVec(v scene.Vec) string {
	return formatTriple(v.X, v.Y, v.Z)
}
