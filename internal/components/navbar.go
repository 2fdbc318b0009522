package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
)

// Navbar is the fixed header. currentPath decides how "Get Started" behaves:
// on the home page navbar.js scrolls to pricing instead of navigating.
func Navbar(currentPath string) g.Node {
	return Header(
		g.Attr("data-navbar", ""),
		Class("sticky top-0 z-50 border-b border-slate-800/50 backdrop-blur-md bg-[#0a0f14]/80 px-6 py-4 lg:px-20"),
		Div(
			Class("max-w-7xl mx-auto flex items-center justify-between"),
			A(
				Href("/"),
				Class("text-primary hover:opacity-80 transition-opacity"),
				g.Attr("aria-label", content.Brand+" home"),
				Logo(),
			),
			Nav(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(content.NavLinks, func(l content.Link) g.Node {
					return A(
						Class("text-sm font-medium text-slate-300 hover:text-primary transition-colors"),
						Href(l.Href),
						g.Text(l.Label),
					)
				})),
			),
			Div(
				Class("flex items-center gap-4"),
				A(
					Href("/#"+content.AnchorPricing),
					g.Attr("data-scroll-target", content.AnchorPricing),
					g.If(currentPath == "/", g.Attr("data-same-page", "")),
					Class("bg-primary text-white font-bold py-2 px-6 rounded-lg text-sm hover:opacity-90 transition-all glow-effect"),
					g.Text("Get Started"),
				),
			),
		),
	)
}
