package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Service is one entry of the service menu.
type Service struct {
	Name      string
	Summary   string
	Features  []string
	PriceNote string
}

var services = []Service{
	{
		Name:      "Residential Cleaning",
		Summary:   "Complete home cleaning services including kitchens, bathrooms, bedrooms, and living areas.",
		Features:  []string{"Weekly, bi-weekly, or monthly service", "Eco-friendly cleaning products", "Customizable cleaning checklist"},
		PriceNote: "Starting at Ksh.##",
	},
	{
		Name:      "Commercial Cleaning",
		Summary:   "Professional office and commercial space cleaning to maintain a productive work environment.",
		Features:  []string{"Daily, weekly, or monthly schedules", "After-hours cleaning available", "Sanitization and disinfection"},
		PriceNote: "Get Quote",
	},
	{
		Name:      "Fumigation Services",
		Summary:   "Thorough fumigation services including kitchens, bedrooms, and living areas.",
		Features:  []string{"Weekly, bi-weekly, or monthly service", "Eco-friendly fumigation products", "Budget-friendly", "Customizable cleaning checklist"},
		PriceNote: "Starting at Ksh.##",
	},
	{
		Name:      "Deep Cleaning",
		Summary:   "Intensive cleaning service that reaches every corner and surface for a thorough refresh.",
		Features:  []string{"Inside appliances and cabinets", "Pocket-friendly", "Baseboards and window sills", "Light fixtures and ceiling fans"},
		PriceNote: "Get Quote",
	},
	{
		Name:      "Move-in/Move-out",
		Summary:   "Top-to-bottom cleaning so the next chapter starts in a spotless space.",
		Features:  []string{"Empty-home deep clean", "Inside closets and drawers", "Landlord-ready finish"},
		PriceNote: "Get Quote",
	},
}

// Services returns the service menu in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceTypes returns the names accepted by the quote and booking forms.
func ServiceTypes() []string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	return names
}

// DefaultServiceType is preselected on the quote and booking forms.
const DefaultServiceType = "Residential Cleaning"

// IsServiceType reports whether name is one of the offered services.
func IsServiceType(name string) bool {
	return slices.Contains(ServiceTypes(), name)
}

// Markdown renders the service menu as a markdown document.
func (s Service) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Name, s.Summary)
	for _, f := range s.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	fmt.Fprintf(&b, "\n**%s**\n", s.PriceNote)
	return b.String()
}

// ServicesMarkdown renders every service as a single markdown document.
func ServicesMarkdown() string {
	var b strings.Builder
	b.WriteString("# Our Cleaning Services\n\n")
	b.WriteString("From regular maintenance to deep cleaning, we offer comprehensive solutions for every space.\n\n")
	for _, s := range services {
		b.WriteString(s.Markdown())
		b.WriteString("\n")
	}
	return b.String()
}
