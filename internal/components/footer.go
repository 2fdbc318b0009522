package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
)

func SiteFooter() g.Node {
	return Footer(
		g.Attr("data-footer", ""),
		Class("relative z-10 border-t border-slate-800/50 py-12 px-6 bg-[#0a0f14]"),
		Div(
			Class("max-w-7xl mx-auto flex flex-col items-center gap-8"),
			Div(
				Class("flex flex-wrap justify-center gap-10"),
				g.Group(g.Map(content.FooterLinks, func(l content.Link) g.Node {
					return A(
						Href(l.Href),
						Class("text-slate-500 hover:text-slate-300 transition-colors text-sm font-medium"),
						g.Text(l.Label),
					)
				})),
			),
			Div(
				Class("flex gap-6"),
				g.Group(g.Map(content.SocialLinks, func(s content.Social) g.Node {
					return A(
						Href(s.Href),
						Class("text-slate-500 hover:text-primary transition-colors"),
						Icon(s.Icon+" size-5", s.Label),
					)
				})),
			),
			P(
				Class("text-slate-600 text-sm"),
				g.Text(fmt.Sprintf("© %d %s. All rights reserved.", content.CopyrightYear, content.CopyrightHolder)),
			),
		),
	)
}
