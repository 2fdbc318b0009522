package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
)

type PageConfig struct {
	Title       string
	Description string
	// Path is the route being rendered; the navbar uses it.
	Path string
	// SiteURL is prefixed to Path for the canonical link.
	SiteURL string
}

const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        primary: "#0d93f2",
        accent: "#00e5ff",
        "brand-purple": "#6d28d9",
        "background-dark": "#0a0f14"
      },
      fontFamily: {
        display: ["Space Grotesk", "Inter", "sans-serif"],
        sans: ["Inter", "sans-serif"]
      }
    }
  }
}`

// Page renders a complete document: the ambient glow wraps the navbar, the
// page body and the footer.
func Page(config PageConfig, body ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = content.Brand + " - AI Lead Capture & Booking Automation"
	} else {
		config.Title = config.Title + " | " + content.Brand
	}

	if config.Description == "" {
		config.Description = "We build AI-powered lead capture & booking systems that automatically qualify prospects and fill your calendar without manual follow-ups."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("dark scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Script(g.Raw(`document.documentElement.classList.add("js")`)),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.SiteURL != "", Link(Rel("canonical"), Href(config.SiteURL+config.Path))),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=Space+Grotesk:wght@500;700&display=swap")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(tailwindConfig)),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-background-dark text-slate-100 font-sans antialiased"),
				g.Attr("data-path", config.Path),
				AmbientTracker(
					Div(Class("absolute inset-0 grid-bg z-0 pointer-events-none")),
					Div(Class("absolute inset-0 bg-gradient-to-b from-transparent via-[#0a0f14]/80 to-[#0a0f14] z-0 pointer-events-none")),

					Navbar(config.Path),

					Div(
						Class("flex-grow flex flex-col items-center relative z-10 w-full"),
						g.Attr("data-page", ""),
						g.Group(body),
					),

					SiteFooter(),
				),

				Script(Src("/static/js/ambient.js"), Defer()),
				Script(Src("/static/js/reveal.js"), Defer()),
				Script(Src("/static/js/navbar.js"), Defer()),
				Script(Src("/static/js/ack.js"), Defer()),
				Script(Src("/static/js/accordion.js"), Defer()),
				Script(Src("/static/js/demo.js"), Defer()),
				Script(Src("/static/js/checkout.js"), Defer()),
			),
		),
	})
}
