package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
)

func Services() g.Node {
	return Section(
		ID(content.AnchorSolutions),
		Class("relative z-10 py-24 bg-slate-950/50 backdrop-blur-sm w-full"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("max-w-2xl mb-16"),
				H2(
					Class("font-display text-3xl lg:text-4xl font-bold text-white mb-6 leading-tight"),
					g.Text("Stop Losing Leads to "),
					Span(Class("text-primary underline decoration-slate-700 underline-offset-8"), g.Text("Slow Response Times")),
				),
				P(
					Class("text-slate-400 text-lg"),
					g.Text("Our AI systems ensure every prospect is engaged, qualified, and booked within seconds. Scale your revenue without scaling your headcount."),
				),
			),
			Div(
				Class("grid md:grid-cols-3 gap-6"),
				g.Group(g.Map(content.Services, func(s content.Service) g.Node {
					return Div(
						Class("group p-8 rounded-xl bg-slate-900/40 border border-slate-800 hover:border-primary/50 hover:-translate-y-2 hover:scale-[1.02] transition-all flex flex-col gap-6 relative overflow-hidden"),
						Reveal(0),
						Div(Class("absolute top-0 right-0 w-32 h-32 bg-primary/5 rounded-bl-[100px] -z-10 group-hover:bg-primary/20 transition-colors")),
						Div(
							Class("h-14 w-14 rounded-xl bg-slate-800 border border-slate-700 flex items-center justify-center text-primary group-hover:bg-primary group-hover:text-white transition-all shadow-lg"),
							Icon(s.Icon+" size-8", ""),
						),
						Div(
							H3(Class("font-display text-xl font-bold text-slate-100 mb-2"), g.Text(s.Title)),
							P(Class("text-slate-400 leading-relaxed mb-4"), g.Text(s.Description)),
							Ul(
								Class("space-y-2"),
								g.Group(g.Map(s.Features, func(f string) g.Node {
									return Li(
										Class("flex items-center gap-2 text-sm text-slate-500"),
										Icon("lucide--check-circle-2 size-4 text-primary", ""),
										g.Text(f),
									)
								})),
							),
						),
					)
				})),
			),
		),
	)
}

func ProcessFlow() g.Node {
	return Section(
		ID(content.AnchorCaseStudies),
		Class("py-24 px-6 md:px-20 max-w-7xl mx-auto w-full"),
		Div(
			Class("text-center mb-20"),
			H2(Class("font-display text-3xl md:text-4xl font-bold mb-4 text-white"), g.Text(fmt.Sprintf("The %d-Step Automation Flow", len(content.Steps)))),
			P(Class("text-slate-400"), g.Text("From initial contact to confirmed meeting in minutes")),
		),
		Div(
			Class("relative"),
			Div(Class("hidden md:block absolute top-6 left-0 w-full h-0.5 flow-line opacity-20"), g.Attr("aria-hidden", "true")),
			Ol(
				Class("relative grid grid-cols-1 md:grid-cols-6 gap-8"),
				g.Group(g.Map(content.Steps, func(s content.Step) g.Node {
					return Li(
						Class("relative flex flex-col items-center text-center"),
						Reveal(float64(s.Ordinal-1)*0.1),
						Div(
							Class("w-12 h-12 rounded-full bg-primary text-white flex items-center justify-center font-bold text-lg mb-4 z-10 border-4 border-[#0a0f14]"),
							g.Textf("%d", s.Ordinal),
						),
						Div(Class("text-primary mb-3"), Icon(s.Icon+" size-6", "")),
						H4(Class("font-bold text-slate-100 mb-2"), g.Text(s.Title)),
						P(Class("text-xs text-slate-500"), g.Text(s.Subtitle)),
					)
				})),
			),
		),
	)
}

func Pricing() g.Node {
	cards := make([]g.Node, 0, len(content.Plans))
	for i, p := range content.Plans {
		cards = append(cards, planCard(i, p))
	}

	return Section(
		ID(content.AnchorPricing),
		Class("max-w-[1200px] w-full px-6 py-16 md:py-24 text-center mx-auto scroll-mt-24"),
		Div(
			Class("flex flex-col gap-4 mb-16"),
			H2(
				Class("text-slate-50 text-4xl md:text-6xl font-black leading-tight tracking-tighter font-display"),
				g.Text("Simple, Transparent "),
				Span(Class("text-accent"), g.Text("Pricing")),
			),
			P(
				Class("text-slate-400 text-lg md:text-xl max-w-2xl mx-auto"),
				g.Text("Scale your agency with predictable costs. Choose the plan that fits your current growth stage."),
			),
		),
		Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8 items-stretch"), g.Group(cards)),
	)
}

func planCard(i int, p content.Plan) g.Node {
	card := "border-slate-800 bg-brand-purple/10 hover:-translate-y-1"
	price := "text-white"
	button := "bg-slate-800 text-white"
	if p.Featured {
		card = "border-2 border-accent scale-105 z-10 neon-glow bg-brand-purple/20"
		price = "text-accent"
		button = "bg-accent text-background-dark"
	}

	return Div(
		Class("relative flex flex-col gap-6 rounded-xl border p-8 transition-transform "+card),
		g.Attr("data-plan", p.Name),
		g.If(p.Featured, g.Attr("data-featured", "")),
		Reveal(float64(i)*0.2),
		g.If(p.Featured, Div(
			Class("absolute -top-4 left-1/2 -translate-x-1/2 bg-accent text-background-dark text-[10px] font-black uppercase tracking-widest px-4 py-1.5 rounded-full"),
			g.Text("Most Popular"),
		)),
		Div(
			Class("flex flex-col gap-2 text-left"),
			H3(Class("text-slate-100 text-xl font-bold"), g.Text(p.Name)),
			Div(
				Class("flex items-baseline gap-1"),
				Span(Class("text-4xl font-black tracking-tight "+price), g.Text(p.Price)),
				g.If(p.Monthly(), Span(Class("text-slate-400 text-sm font-semibold"), g.Text("/mo"))),
			),
			P(Class("text-sm text-slate-400"), g.Text(p.Description)),
		),
		A(
			Href(p.CheckoutURL()),
			Class("w-full flex items-center justify-center rounded-lg h-12 px-4 text-sm font-bold hover:brightness-110 transition-all "+button),
			g.Text(p.CTA),
		),
		Ul(
			Class("flex flex-col gap-4 text-left border-t border-slate-800 pt-6"),
			g.Group(g.Map(p.Features, func(f string) g.Node {
				return Li(
					Class("flex items-center gap-3 text-sm"),
					Icon("lucide--check-circle-2 size-5 text-accent", ""),
					g.Text(f),
				)
			})),
		),
	)
}

func WhyChooseUs() g.Node {
	return Section(
		ID(content.AnchorAbout),
		Class("w-full bg-slate-100/5 py-20"),
		Div(
			Class("max-w-[1200px] mx-auto px-6"),
			Div(
				Class("flex flex-col gap-4 mb-12"),
				H2(Class("text-slate-50 text-3xl md:text-4xl font-black leading-tight tracking-tight font-display"), g.Text("Why Choose Our AI Systems?")),
				P(Class("text-slate-400 text-base max-w-2xl"), g.Text("We build proprietary systems that work while you sleep, ensuring no lead is ever left behind.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(content.Reasons, func(r content.Reason) g.Node {
					return Div(
						Class("flex flex-col gap-4 rounded-xl border border-slate-800 bg-[#0a0f14] p-6 transition-transform hover:-translate-y-1"),
						Div(
							Class("w-12 h-12 rounded-lg bg-accent/10 flex items-center justify-center"),
							Icon(r.Icon+" size-8 text-accent", ""),
						),
						Div(
							H3(Class("text-white text-lg font-bold mb-2"), g.Text(r.Title)),
							P(Class("text-slate-400 text-sm leading-relaxed"), g.Text(r.Description)),
						),
					)
				})),
			),
		),
	)
}

func FinalCTA() g.Node {
	return Section(
		Class("w-full px-6 py-24 md:py-32 overflow-hidden relative"),
		Div(
			Class("absolute inset-0 z-0 overflow-hidden pointer-events-none"),
			Div(Class("absolute top-1/2 left-1/2 -translate-x-1/2 -translate-y-1/2 w-[600px] h-[600px] bg-accent/5 rounded-full blur-[120px]")),
			Div(Class("absolute -top-24 -right-24 w-96 h-96 bg-brand-purple/20 rounded-full blur-[80px]")),
		),
		Div(
			Class("max-w-4xl mx-auto relative z-10 text-center flex flex-col items-center gap-8"),
			Div(
				Class("inline-flex items-center gap-2 bg-accent/10 border border-accent/20 px-4 py-1.5 rounded-full animate-pulse-ring"),
				Icon("lucide--sparkles size-4 text-accent", ""),
				Span(Class("text-xs font-bold text-accent uppercase tracking-widest"), g.Text("Available for Q4 Onboarding")),
			),
			H2(
				Class("text-slate-50 text-4xl md:text-6xl font-black leading-[1.1] tracking-tighter font-display"),
				g.Text("Stop Chasing Leads."),
				Br(),
				Span(Class("text-transparent bg-clip-text bg-gradient-to-r from-accent to-primary"), g.Text("Let AI Book Them For You.")),
			),
			P(
				Class("text-slate-400 text-lg md:text-xl max-w-2xl"),
				g.Text("Ready to automate your growth? Claim your free blueprint today and see exactly how we can scale your meetings."),
			),
			AckButton(content.AckBlueprint,
				"flex min-w-[280px] items-center justify-center rounded-xl h-14 px-8 bg-accent text-background-dark text-lg font-black transition-all hover:scale-105 hover:brightness-110 shadow-lg shadow-accent/20",
				g.Text("Get Free Automation Blueprint"),
			),
			P(Class("text-xs text-slate-500 font-medium"), g.Text("No credit card required • 15-min discovery call")),
		),
	)
}
