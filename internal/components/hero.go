package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
	"github.com/nexusai/website/internal/demo"
)

func Hero(script demo.Script, streamURL string) g.Node {
	return Main(
		Class("relative z-10 flex-grow flex flex-col items-center justify-center px-6 py-16 lg:py-32 max-w-7xl mx-auto"),
		Div(
			Class("grid lg:grid-cols-2 gap-12 items-center"),
			Div(
				Class("flex flex-col gap-8 text-left reveal-left"),
				Reveal(0),
				Div(
					Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-primary/10 border border-primary/20 w-fit"),
					Span(
						Class("relative flex h-2 w-2"),
						Span(Class("animate-ping absolute inline-flex h-full w-full rounded-full bg-primary opacity-75")),
						Span(Class("relative inline-flex rounded-full h-2 w-2 bg-primary")),
					),
					Span(Class("text-xs font-semibold uppercase tracking-wider text-primary"), g.Text("Next-Gen AI Automation")),
				),
				H1(
					Class("font-display text-5xl lg:text-7xl font-extrabold leading-[1.1] tracking-tight text-white"),
					g.Text("Turn Missed Leads Into "),
					Span(Class("text-primary italic"), g.Text("Booked Appointments")),
					g.Text(" — 24/7"),
				),
				P(
					Class("text-lg lg:text-xl text-slate-400 max-w-xl leading-relaxed"),
					g.Text("We build AI-powered lead capture & booking systems that automatically qualify prospects and fill your calendar without manual follow-ups."),
				),
				Div(
					Class("flex flex-wrap gap-4"),
					A(
						Href("#"+content.AnchorPricing),
						Class("h-14 px-8 bg-primary text-white font-bold rounded-lg flex items-center justify-center hover:opacity-90 transition-all glow-effect text-lg"),
						g.Text("Book Free Automation Audit"),
					),
					AckButton(content.AckWatchDemo,
						"h-14 px-8 bg-slate-800 text-white font-bold rounded-lg flex items-center justify-center hover:bg-slate-700 transition-all text-lg gap-2",
						Icon("lucide--play-circle size-6", ""),
						g.Text("Watch Demo"),
					),
				),
				Div(
					Class("flex items-center gap-4 text-sm text-slate-500 font-medium"),
					Div(
						Class("flex -space-x-2"),
						g.Group(g.Map([]int{1, 2, 3}, func(i int) g.Node {
							return Div(
								Class("h-8 w-8 rounded-full border-2 border-[#0a0f14] bg-slate-700 overflow-hidden"),
								Img(
									Src(fmt.Sprintf("https://picsum.photos/seed/user%d/100/100", i)),
									Alt("User"),
									g.Attr("referrerpolicy", "no-referrer"),
									g.Attr("loading", "lazy"),
								),
							)
						})),
					),
					Span(g.Text("Trusted by 500+ service businesses")),
				),
			),
			Div(
				Class("relative group w-full animate-float reveal-scale"),
				Reveal(0.2),
				Div(Class("absolute -inset-1 bg-gradient-to-r from-primary via-blue-500 to-purple-600 rounded-xl blur-lg opacity-40 group-hover:opacity-60 transition duration-1000 group-hover:duration-200 animate-pulse")),
				LiveDemoConsole(script, streamURL),
			),
		),
	)
}
