package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/accordion"
	"github.com/nexusai/website/internal/content"
	"github.com/nexusai/website/internal/demo"
)

// HomeOptions carries the little per-request state the home page has.
type HomeOptions struct {
	Script    demo.Script
	StreamURL string
	FAQ       accordion.State
}

func HomePage(opts HomeOptions) g.Node {
	return g.Group([]g.Node{
		Hero(opts.Script, opts.StreamURL),
		Services(),
		ProcessFlow(),
		Pricing(),
		WhyChooseUs(),
		FAQ(opts.FAQ),
		FinalCTA(),
	})
}

const pageMain = "relative z-10 flex-grow flex flex-col items-center justify-start px-6 py-16 lg:py-32 w-full gap-8"

// LegalPage renders a policy document. bodyHTML is trusted, rendered Markdown.
func LegalPage(doc content.LegalDocument, bodyHTML string) g.Node {
	return Main(
		Class(pageMain+" max-w-4xl mx-auto text-slate-300 text-left"),
		g.Attr("data-legal", doc.Slug),
		H1(Class("text-4xl md:text-5xl font-black text-white font-display mb-4 w-full"), g.Text(doc.Title)),
		P(Class("w-full"), g.Text("Last updated: "+doc.Updated)),
		Div(
			Class("legal-body flex flex-col gap-6 w-full"),
			g.Raw(bodyHTML),
		),
	)
}

// ContactPage renders the support form. ack, when set, is shown above it.
func ContactPage(ack string) g.Node {
	return Main(
		Class(pageMain+" max-w-4xl mx-auto text-center"),
		H1(Class("text-4xl md:text-5xl font-black text-white font-display mb-4"), g.Text("Contact Support")),
		P(
			Class("text-lg text-slate-400 max-w-2xl mb-8"),
			g.Text("Have questions or need help with your automation setup? We're here for you."),
		),
		ackBanner(ack),
		Form(
			g.Attr("method", "post"),
			g.Attr("action", "/contact"),
			g.Attr("data-ack", content.AckMessageSent),
			g.Attr("novalidate", ""),
			Class("w-full max-w-md bg-slate-900/50 border border-slate-800 p-8 rounded-xl flex flex-col gap-6 text-left"),
			field("Name", "name", "text", "John Doe"),
			field("Email", "email", "email", "john@example.com"),
			Div(
				Class("flex flex-col gap-2"),
				Label(g.Attr("for", "message"), Class("text-sm font-semibold text-slate-300"), g.Text("Message")),
				Textarea(
					ID("message"),
					Name("message"),
					Placeholder("How can we help you?"),
					Class("bg-[#0a0f14] border border-slate-800 rounded-lg p-3 text-white focus:outline-none focus:border-primary transition-colors min-h-[120px]"),
				),
			),
			Button(
				Type("submit"),
				Class("mt-4 bg-primary text-white font-bold py-3 px-6 rounded-lg text-sm hover:opacity-90 transition-all glow-effect"),
				g.Text("Send Message"),
			),
		),
	)
}

// CheckoutPage renders the payment form for planLabel, shown verbatim in the
// order summary. ack, when set, is shown above the form.
func CheckoutPage(planLabel, ack string) g.Node {
	return Main(
		Class(pageMain),
		H1(Class("text-4xl md:text-5xl font-black text-white font-display mb-8"), g.Text("Checkout")),
		ackBanner(ack),
		Form(
			g.Attr("method", "post"),
			g.Attr("action", "/checkout"),
			g.Attr("data-ack", content.AckPayment),
			g.Attr("novalidate", ""),
			Class("flex flex-col md:flex-row gap-8 w-full max-w-5xl"),
			Input(Type("hidden"), Name("plan"), Value(planLabel), g.Attr("data-plan-input", "")),

			Div(
				Class("w-full md:w-2/3 bg-slate-900/50 border border-slate-800 p-8 rounded-xl flex flex-col gap-6 text-left"),
				H2(Class("text-2xl font-bold text-white mb-4"), g.Text("Payment Method")),
				Div(
					Class("flex gap-4 mb-6"),
					Button(
						Type("button"),
						Class("flex-1 bg-primary text-white font-bold py-3 px-4 rounded-lg flex items-center justify-center gap-2 border-2 border-primary"),
						g.Attr("aria-pressed", "true"),
						Icon("lucide--credit-card size-5", ""),
						g.Text("Credit Card"),
					),
					AckButton(content.AckPayPal,
						"flex-1 bg-[#0a0f14] text-slate-300 font-bold py-3 px-4 rounded-lg flex items-center justify-center gap-2 border border-slate-800 hover:border-slate-600 transition-colors",
						g.Text("PayPal"),
					),
				),
				Div(
					Class("flex flex-col gap-4"),
					field("Card Name", "card_name", "text", "John Doe"),
					field("Card Number", "card_number", "text", "0000 0000 0000 0000"),
					Div(
						Class("flex gap-4"),
						Div(Class("flex-1"), field("Expiry Date", "card_expiry", "text", "MM/YY")),
						Div(Class("flex-1"), field("CVC", "card_cvc", "text", "123")),
					),
				),
			),

			Div(
				Class("w-full md:w-1/3 bg-slate-900/50 border border-slate-800 p-8 rounded-xl flex flex-col gap-6 h-fit text-left"),
				H2(Class("text-xl font-bold text-white"), g.Text("Order Summary")),
				Div(
					Class("flex justify-between items-center text-slate-300"),
					Span(g.Attr("data-order-plan", ""), g.Text(planLabel)),
				),
				Div(Class("border-t border-slate-800 my-2")),
				Div(
					Class("flex justify-between items-center text-white font-bold text-lg"),
					Span(g.Text("Total")),
					Span(Class("text-primary text-sm"), g.Text("(Billed Now)")),
				),
				Button(
					Type("submit"),
					Class("mt-4 bg-primary text-white font-bold py-3 px-6 rounded-lg text-sm hover:opacity-90 transition-all glow-effect w-full"),
					g.Text("Confirm Payment"),
				),
			),
		),
	)
}

// NotFoundPage is shown for paths outside the five routes.
func NotFoundPage(path string) g.Node {
	return Main(
		Class(pageMain+" max-w-2xl mx-auto text-center"),
		g.Attr("data-not-found", ""),
		P(Class("text-primary font-mono text-sm"), g.Text("404")),
		H1(Class("text-4xl md:text-5xl font-black text-white font-display"), g.Text("Page not found")),
		P(Class("text-slate-400"), g.Text("Nothing lives at "), Code(g.Text(path)), g.Text(".")),
		A(
			Href("/"),
			Class("bg-primary text-white font-bold py-3 px-6 rounded-lg text-sm hover:opacity-90 transition-all glow-effect"),
			g.Text("Back to home"),
		),
	)
}
