package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/accordion"
	"github.com/nexusai/website/internal/content"
)

// FAQ renders the single-expand accordion. Each question links to the state
// its selection produces, so toggling works without JavaScript; with it,
// accordion.js applies the same transition in place.
func FAQ(state accordion.State) g.Node {
	items := make([]g.Node, 0, len(content.FAQs))
	for i, f := range content.FAQs {
		items = append(items, faqItem(i, f, state))
	}

	return Section(
		ID(content.AnchorFAQ),
		Class("w-full bg-[#0a0f14] py-20 relative z-10 border-t border-slate-800/50"),
		Div(
			Class("max-w-3xl mx-auto px-6"),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-slate-50 text-3xl md:text-5xl font-black mb-4 font-display tracking-tight"), g.Text("Frequently Asked Questions")),
				P(Class("text-slate-400"), g.Text("Everything you need to know about our automation systems.")),
			),
			Div(Class("flex flex-col gap-4"), g.Attr("data-accordion", ""), g.Group(items)),
		),
	)
}

func faqItem(i int, f content.FAQ, state accordion.State) g.Node {
	open := state.IsOpen(i)
	href := "/#" + content.AnchorFAQ
	if next := state.Toggle(i).String(); next != "" {
		href = "/?faq=" + next + "#" + content.AnchorFAQ
	}

	return Details(
		Class("group border border-slate-800 bg-slate-900/40 rounded-xl overflow-hidden backdrop-blur-sm"),
		Name("faq"),
		g.Attr("data-faq-index", strconv.Itoa(i)),
		g.If(open, g.Attr("open", "")),
		Reveal(float64(i)*0.1),
		Summary(
			Class("list-none w-full flex items-center justify-between p-6 text-left hover:bg-slate-800/30 transition-colors cursor-pointer"),
			A(
				Href(href),
				Class("font-bold text-lg text-slate-100"),
				g.Attr("data-faq-toggle", ""),
				g.Text(f.Question),
			),
			Icon("lucide--chevron-down text-slate-500 transition-transform group-open:rotate-180 group-open:text-primary", ""),
		),
		Div(
			Class("px-6 pb-6 text-slate-400 leading-relaxed faq-answer"),
			g.Text(f.Answer),
		),
	)
}
