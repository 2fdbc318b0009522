package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/content"
)

// Logo is the lightning-bolt brand mark followed by the brand name.
func Logo() g.Node {
	return Div(
		Class("flex items-center gap-3"),
		g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("width", "32"),
			g.Attr("height", "32"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("fill", "none"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("aria-hidden", "true"),
			Class("fill-primary"),
			g.El("path", g.Attr("d", "M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z")),
		),
		Span(
			Class("font-display text-xl font-bold tracking-tight text-slate-100"),
			g.Text(content.Brand),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an Iconify icon. iconClass is "set--name" optionally followed
// by extra classes, e.g. "lucide--bot size-4 text-primary".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if extra := extractSizeClasses(iconClass); extra != "" {
		classes = fmt.Sprintf("%s %s", classes, extra)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is an icon centered in a tinted rounded square.
func IconBadge(icon, color, size string) g.Node {
	return Div(
		Class(fmt.Sprintf("%s rounded-xl bg-%s/10 border border-%s/20 flex items-center justify-center text-%s shrink-0", size, color, color, color)),
		Icon(icon+" size-7", ""),
	)
}

// AckButton is a placeholder action that only shows an acknowledgement dialog.
func AckButton(message, classes string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class(classes),
		g.Attr("data-ack", message),
		g.Group(children),
	)
}

// Reveal marks a node for the entrance animation, delayed by delay seconds.
func Reveal(delay float64) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.If(delay > 0, Style(fmt.Sprintf("--reveal-delay: %.1fs", delay))),
	})
}

// field is a labelled uncontrolled form input.
func field(label, name, inputType, placeholder string) g.Node {
	return Div(
		Class("flex flex-col gap-2"),
		Label(g.Attr("for", name), Class("text-sm font-semibold text-slate-300"), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(inputType),
			Placeholder(placeholder),
			Class("bg-[#0a0f14] border border-slate-800 rounded-lg p-3 text-white focus:outline-none focus:border-primary transition-colors"),
		),
	)
}

// ackBanner is the server-rendered acknowledgement shown after a form post.
func ackBanner(message string) g.Node {
	if message == "" {
		return nil
	}
	return Div(
		g.Attr("role", "status"),
		g.Attr("data-ack-banner", ""),
		Class("w-full max-w-md flex items-center gap-3 rounded-xl border border-primary/40 bg-primary/10 px-5 py-4 text-left text-slate-100"),
		Icon("lucide--check-circle-2 size-5 text-primary", ""),
		Span(g.Text(message)),
	)
}
