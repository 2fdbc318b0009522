package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nexusai/website/internal/accordion"
	"github.com/nexusai/website/internal/content"
	"github.com/nexusai/website/internal/demo"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestGradient(t *testing.T) {
	assert.Equal(t,
		"radial-gradient(600px circle at 0px 0px, rgba(13, 147, 242, 0.08), transparent 40%)",
		Gradient(Position{}))
	assert.Equal(t,
		"radial-gradient(600px circle at 120px 48px, rgba(13, 147, 242, 0.08), transparent 40%)",
		Gradient(Position{X: 120, Y: 48}))
}

func TestAmbientTracker_RendersAtOrigin(t *testing.T) {
	html := render(t, AmbientTracker())
	assert.Contains(t, html, "data-ambient-glow")
	assert.Contains(t, html, "circle at 0px 0px")
}

func TestPage_WrapsBodyWithOneNavbarAndFooter(t *testing.T) {
	legal, err := content.Privacy.HTML()
	require.NoError(t, err)

	pages := map[string]g.Node{
		"/":         HomePage(HomeOptions{Script: demo.BookingCall, FAQ: accordion.State{}}),
		"/privacy":  LegalPage(content.Privacy, legal),
		"/terms":    LegalPage(content.Terms, legal),
		"/contact":  ContactPage(""),
		"/checkout": CheckoutPage("Pro", ""),
	}

	for path, body := range pages {
		t.Run(path, func(t *testing.T) {
			html := render(t, Page(PageConfig{Path: path}, body))
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Equal(t, 1, strings.Count(html, "data-navbar"))
			assert.Equal(t, 1, strings.Count(html, "data-footer"))
			assert.Equal(t, 1, strings.Count(html, "data-page"))
			assert.Contains(t, html, `data-path="`+path+`"`)
		})
	}
}

func TestPage_Title(t *testing.T) {
	html := render(t, Page(PageConfig{}))
	assert.Contains(t, html, "<title>Nexus AI - AI Lead Capture &amp; Booking Automation</title>")

	html = render(t, Page(PageConfig{Title: "Checkout"}))
	assert.Contains(t, html, "<title>Checkout | Nexus AI</title>")
}

func TestPage_Canonical(t *testing.T) {
	html := render(t, Page(PageConfig{Path: "/terms", SiteURL: "https://nexus.example"}))
	assert.Contains(t, html, `<link rel="canonical" href="https://nexus.example/terms">`)

	html = render(t, Page(PageConfig{Path: "/terms"}))
	assert.NotContains(t, html, `rel="canonical"`)
}

func TestNavbar_GetStartedTargetsPricing(t *testing.T) {
	html := render(t, Navbar("/"))
	assert.Contains(t, html, `href="/#pricing"`)
	assert.Contains(t, html, "data-same-page")

	html = render(t, Navbar("/contact"))
	assert.NotContains(t, html, "data-same-page")
}

func TestCheckoutPage_ShowsPlanVerbatim(t *testing.T) {
	html := render(t, CheckoutPage("Pro", ""))
	assert.Contains(t, html, `<span data-order-plan="">Pro</span>`)
	assert.Contains(t, html, `value="Pro"`)
	assert.NotContains(t, html, "data-ack-banner")

	html = render(t, CheckoutPage(content.PlanLabel(""), ""))
	assert.Contains(t, html, `<span data-order-plan="">Selected Plan</span>`)

	html = render(t, CheckoutPage(`<b>Gold</b>`, ""))
	assert.Contains(t, html, "&lt;b&gt;Gold&lt;/b&gt;")
}

func TestCheckoutPage_Acknowledgement(t *testing.T) {
	html := render(t, CheckoutPage("Pro", content.AckPayment))
	assert.Contains(t, html, "data-ack-banner")
	assert.Contains(t, html, "Payment processed! Welcome aboard.")
	assert.Contains(t, html, `data-ack="Redirecting to PayPal..."`)
}

func TestContactPage(t *testing.T) {
	html := render(t, ContactPage(""))
	assert.Contains(t, html, `action="/contact"`)
	assert.Contains(t, html, `method="post"`)
	assert.Contains(t, html, `name="message"`)
	assert.NotContains(t, html, "data-ack-banner")

	html = render(t, ContactPage(content.AckMessageSent))
	assert.Contains(t, html, "Message sent! We will get back to you shortly.")
}

func TestPricing_LinksToCheckout(t *testing.T) {
	html := render(t, Pricing())
	for _, p := range content.Plans {
		assert.Contains(t, html, `href="`+strings.ReplaceAll(p.CheckoutURL(), "&", "&amp;")+`"`)
	}
	assert.Equal(t, 1, strings.Count(html, "Most Popular"))
	assert.Equal(t, 2, strings.Count(html, "/mo"))
}

func TestFAQ_ToggleLinks(t *testing.T) {
	html := render(t, FAQ(accordion.State{}))
	assert.NotContains(t, html, `open=""`)
	assert.Contains(t, html, `href="/?faq=0#faq"`)
	assert.Contains(t, html, `href="/?faq=3#faq"`)

	html = render(t, FAQ(accordion.Open(1)))
	assert.Equal(t, 1, strings.Count(html, `open=""`))
	assert.Contains(t, html, `data-faq-index="1" open=""`)
	// The open entry links back to the closed state.
	assert.Contains(t, html, `href="/#faq"`)
	assert.Contains(t, html, `href="/?faq=2#faq"`)
}

func TestLiveDemoConsole_InitialTranscript(t *testing.T) {
	html := render(t, LiveDemoConsole(demo.BookingCall, "/demo/stream"))
	assert.Contains(t, html, `data-stream="/demo/stream"`)
	assert.Equal(t, 1, strings.Count(html, `data-sender="agent"`))
	assert.Contains(t, html, "Are you looking to scale your local biz?")
	assert.Contains(t, html, `data-demo-typing="" hidden`)

	html = render(t, LiveDemoConsole(demo.BookingCall, ""))
	assert.NotContains(t, html, "data-stream")
	assert.Contains(t, html, `"delayMs":2000`)
}

func TestScriptJSON_EscapesMarkup(t *testing.T) {
	s := demo.Script{
		Opening: demo.Message{Sender: demo.SenderAgent, Text: "</script><script>alert(1)</script>"},
	}
	out, err := ScriptJSON(s)
	require.NoError(t, err)
	assert.NotContains(t, out, "</script>")
	assert.Contains(t, out, `\u003c/script\u003e`)
	assert.Contains(t, out, `"cues":[]`)
}

func TestTypingIndicator(t *testing.T) {
	assert.NotContains(t, render(t, TypingIndicator(true)), "hidden")
	assert.Contains(t, render(t, TypingIndicator(false)), "hidden")
}

func TestNotFoundPage(t *testing.T) {
	html := render(t, NotFoundPage("/nope"))
	assert.Contains(t, html, "Page not found")
	assert.Contains(t, html, "<code>/nope</code>")
}
