package catalog

// Contact holds the business details shown on the contact page and in the
// floating WhatsApp affordance.
type Contact struct {
	BusinessName string
	Phone        string
	PhoneNote    string
	Email        string
	EmailNote    string
	Area         string
	AreaNote     string
	WhatsAppURL  string
}

// BusinessContact returns the published contact details.
func BusinessContact() Contact {
	return Contact{
		BusinessName: "Milele Cleaning Services",
		Phone:        "+254740786838",
		PhoneNote:    "Available 24/7 for emergencies",
		Email:        "info@milelecleaning.com",
		EmailNote:    "We'll respond within 2 hours",
		Area:         "Nairobi and surrounding areas",
		AreaNote:     "Free estimates within 25 miles",
		WhatsAppURL:  "https://wa.me/254740786838",
	}
}

// Stat is a headline figure from the quick-stats strip.
type Stat struct {
	Value string
	Label string
}

// QuickStats returns the figures shown under the hero banner.
func QuickStats() []Stat {
	return []Stat{
		{Value: "500+", Label: "Happy Clients"},
		{Value: "5+", Label: "Years Experience"},
		{Value: "24/7", Label: "Support"},
		{Value: "100%", Label: "Satisfaction"},
	}
}
