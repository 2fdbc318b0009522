package content

// Link is a labelled navigation target.
type Link struct {
	Label string
	Href  string
}

// Section anchors on the home page.
const (
	AnchorSolutions   = "solutions"
	AnchorCaseStudies = "case-studies"
	AnchorPricing     = "pricing"
	AnchorAbout       = "about"
	AnchorFAQ         = "faq"
)

// NavLinks are the navbar's in-page anchors. They point at the home page so
// they work from every route.
var NavLinks = []Link{
	{"Solutions", "/#" + AnchorSolutions},
	{"Case Studies", "/#" + AnchorCaseStudies},
	{"Pricing", "/#" + AnchorPricing},
	{"About", "/#" + AnchorAbout},
}

var FooterLinks = []Link{
	{"Privacy Policy", "/privacy"},
	{"Terms of Service", "/terms"},
	{"Contact Support", "/contact"},
}

// Social is an icon link in the footer.
type Social struct {
	Icon  string
	Label string
	Href  string
}

// SocialLinks are placeholders until real profiles exist.
var SocialLinks = []Social{
	{"lucide--globe", "Website", "#"},
	{"lucide--users", "Community", "#"},
}

// Acknowledgements shown for actions that are placeholders.
const (
	AckWatchDemo   = "Demo video is being updated. Please check back later!"
	AckBlueprint   = "Thank you! Your free blueprint has been sent to your email."
	AckMessageSent = "Message sent! We will get back to you shortly."
	AckPayment     = "Payment processed! Welcome aboard."
	AckPayPal      = "Redirecting to PayPal..."
)

// DefaultPlanName is shown on checkout when no plan was passed.
const DefaultPlanName = "Selected Plan"

// PlanLabel is the order-summary line for a raw ?plan= value. The value is
// shown verbatim; it is not checked against Plans.
func PlanLabel(raw string) string {
	if raw == "" {
		return DefaultPlanName
	}
	return raw
}
