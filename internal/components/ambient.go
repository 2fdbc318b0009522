package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Position is a pointer location in viewport pixels.
type Position struct {
	X, Y int
}

// Gradient is the overlay background centered on p.
func Gradient(p Position) string {
	return fmt.Sprintf("radial-gradient(600px circle at %dpx %dpx, rgba(13, 147, 242, 0.08), transparent 40%%)", p.X, p.Y)
}

// AmbientTracker wraps children with a decorative glow that follows the
// pointer. The server renders it at the origin; ambient.js moves it.
func AmbientTracker(children ...g.Node) g.Node {
	return Div(
		Class("relative min-h-screen flex flex-col overflow-x-hidden"),
		g.Attr("data-ambient", ""),
		Div(
			Class("pointer-events-none fixed inset-0 z-0 transition-opacity duration-300"),
			g.Attr("data-ambient-glow", ""),
			g.Attr("aria-hidden", "true"),
			Style("background: "+Gradient(Position{})),
		),
		g.Group(children),
	)
}
