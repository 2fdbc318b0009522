package handlers

import (
	"net/http"

	"github.com/nexusai/website/internal/accordion"
	"github.com/nexusai/website/internal/apperror"
	"github.com/nexusai/website/internal/components"
	"github.com/nexusai/website/internal/content"
)

// Home renders the landing page. ?faq=<n> expands one FAQ entry.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	state := accordion.Parse(r.URL.Query().Get("faq"), len(content.FAQs))

	h.render(w, r, http.StatusOK, "/", components.PageConfig{}, components.HomePage(components.HomeOptions{
		Script:    h.script,
		StreamURL: h.streamURL,
		FAQ:       state,
	}))
}

func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, content.Privacy)
}

func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, content.Terms)
}

func (h *Handler) legal(w http.ResponseWriter, r *http.Request, doc content.LegalDocument) {
	body, err := doc.HTML()
	if err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewInternal("failed to render "+doc.Slug, err))
		return
	}

	h.render(w, r, http.StatusOK, "/"+doc.Slug, components.PageConfig{Title: doc.Title}, components.LegalPage(doc, body))
}

// Contact renders the support form.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "/contact", contactConfig, components.ContactPage(""))
}

// SubmitContact acknowledges the support form. Nothing is validated or kept.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.metrics.Acknowledgements.WithLabelValues("contact").Inc()
	h.render(w, r, http.StatusOK, "/contact", contactConfig, components.ContactPage(content.AckMessageSent))
}

// Checkout renders the payment form for ?plan=, shown verbatim.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	plan := content.PlanLabel(r.URL.Query().Get("plan"))
	h.render(w, r, http.StatusOK, "/checkout", checkoutConfig, components.CheckoutPage(plan, ""))
}

// SubmitCheckout acknowledges the payment form. No payment is attempted and
// any field contents, including none, are accepted.
func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	// Malformed bodies still get the acknowledgement.
	_ = r.ParseForm()
	plan := content.PlanLabel(r.PostFormValue("plan"))

	h.metrics.Acknowledgements.WithLabelValues("checkout").Inc()
	h.render(w, r, http.StatusOK, "/checkout", checkoutConfig, components.CheckoutPage(plan, content.AckPayment))
}

// NotFound renders the 404 page, or the JSON error for API clients.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if apperror.WantsJSON(r) {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound)
		return
	}
	h.render(w, r, http.StatusNotFound, "not_found", components.PageConfig{Title: "Page not found"}, components.NotFoundPage(r.URL.Path))
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, r, h.log, apperror.ErrMethodNotAllowed)
}

var (
	contactConfig = components.PageConfig{
		Title:       "Contact Support",
		Description: "Questions about your automation setup? Send us a message and we will get back to you shortly.",
	}
	checkoutConfig = components.PageConfig{
		Title:       "Checkout",
		Description: "Complete your order and start automating your lead capture.",
	}
)
