// Package content holds the static copy shown on the site.
package content

import (
	"net/url"
)

// Brand is the agency's name as shown in the navbar and footer.
const Brand = "Nexus AI"

// CopyrightHolder appears in the footer's copyright line.
const CopyrightHolder = "Nexus AI Automation Agency"

// CopyrightYear is fixed to the year the copy was written.
const CopyrightYear = 2024

// Service is one card in the services section.
type Service struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

var Services = []Service{
	{
		Title:       "24/7 Lead Capture",
		Description: "Never miss a lead, even while you sleep. Our AI agents are persistent, polite, and always available to start a conversation.",
		Icon:        "lucide--message-square",
		Features:    []string{"Instagram DM Automation", "Website Custom Chatbots"},
	},
	{
		Title:       "Auto-Qualification",
		Description: "Filter out window shoppers and price-checkers automatically. Only speak to high-intent prospects that meet your exact criteria.",
		Icon:        "lucide--shield-check",
		Features:    []string{"CRM Lead Tagging", "Custom Intent Scoring"},
	},
	{
		Title:       "Instant Booking",
		Description: "Seamless integration with your Google or Outlook calendar for zero-friction scheduling. Book meetings directly from the chat.",
		Icon:        "lucide--calendar",
		Features:    []string{"Google Calendar Sync", "Automated Follow-ups"},
	},
}

// Step is one stage of the automation flow. Ordinal is its display position, from 1.
type Step struct {
	Ordinal  int
	Icon     string
	Title    string
	Subtitle string
}

var Steps = []Step{
	{1, "lucide--mouse-pointer-click", "Lead Entry", "Ad or Social Media click"},
	{2, "lucide--message-square", "AI Chat", "Instant qualification chat"},
	{3, "lucide--database", "Data Capture", "Auto-sync to CRM"},
	{4, "lucide--calendar", "Auto-Book", "Selected calendar slot"},
	{5, "lucide--bell-ring", "Reminders", "SMS/Email reminders"},
	{6, "lucide--users", "The Call", "Closing the qualified lead"},
}

// Plan is a pricing tier. Featured plans get the emphasized card.
type Plan struct {
	Name        string
	Price       string
	Description string
	Features    []string
	CTA         string
	Featured    bool
}

var Plans = []Plan{
	{
		Name:        "Starter",
		Price:       "$497",
		Description: "Perfect for small businesses starting with AI.",
		Features:    []string{"AI Lead Capture", "Basic CRM Sync", "Email Automation"},
		CTA:         "Get Started",
	},
	{
		Name:        "Pro",
		Price:       "$1,297",
		Description: "Scale your outreach and bookings automatically.",
		Features:    []string{"Everything in Starter", "Automated Booking", "Multi-channel AI", "Priority Support"},
		CTA:         "Start Growing Now",
		Featured:    true,
	},
	{
		Name:        "Elite",
		Price:       "Custom",
		Description: "Full-scale enterprise automation engine.",
		Features:    []string{"Custom AI Strategy", "Full System Integration", "White-glove Deployment", "24/7 Managed Services"},
		CTA:         "Talk to Sales",
	},
}

// CheckoutURL is where the plan's call to action sends the visitor.
func (p Plan) CheckoutURL() string {
	return "/checkout?" + url.Values{"plan": {p.Name}}.Encode()
}

// Monthly reports whether the price is billed per month. Custom quotes are not.
func (p Plan) Monthly() bool {
	return p.Price != "Custom"
}

// Reason is a card in the "why choose us" section.
type Reason struct {
	Title       string
	Description string
	Icon        string
}

var Reasons = []Reason{
	{"Fast Deployment", "Don't wait months. Get your custom automation ecosystem live in as little as 7 days.", "lucide--rocket"},
	{"AI Strategy", "Bespoke AI workflows designed around your unique business bottlenecks and goals.", "lucide--brain-circuit"},
	{"Revenue Focused", "Every node we build has one ultimate goal: maximizing your ROI and bottom line.", "lucide--trending-up"},
}

// FAQ is a question and its answer.
type FAQ struct {
	Question string
	Answer   string
}

var FAQs = []FAQ{
	{"How fast can I see results?", "Most of our clients see an increase in booked meetings within the first 14 days of deployment. Our AI starts capturing and qualifying leads instantly."},
	{"Do I need technical skills to use this?", "Not at all. We handle the entire build, integration, and training. You just focus on closing the leads we book for you."},
	{"Will the AI sound Robotic?", "No. We train our AI on your exact brand voice, past conversations, and winning sales scripts. Most prospects have no idea they aren't speaking to a human."},
	{"What happens to unqualified leads?", "They are politely disqualified and added to a long-term nurture sequence in your CRM, ensuring they don't clog up your actual sales calendar."},
}
