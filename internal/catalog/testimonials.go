// Package catalog holds the read-only reference data shown by the
// storefront: customer testimonials, the service menu and the business
// contact details.
package catalog

// Theme tags a testimonial with the icon and accent used on its card.
type Theme int

const (
	// ThemeResident marks a household customer.
	ThemeResident Theme = iota
	// ThemeBusiness marks an office or business customer.
	ThemeBusiness
	// ThemeApartment marks an apartment resident.
	ThemeApartment
)

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case ThemeResident:
		return "resident"
	case ThemeBusiness:
		return "business"
	case ThemeApartment:
		return "apartment"
	default:
		return "unknown"
	}
}

// Icon returns the glyph drawn next to the author.
func (t Theme) Icon() string {
	switch t {
	case ThemeBusiness:
		return "▣"
	case ThemeApartment:
		return "⌂"
	default:
		return "☺"
	}
}

// Testimonial is a single customer quote.
type Testimonial struct {
	ID     int
	Rating int // stars, 1-5
	Body   string
	Author string
	Role   string
	Theme  Theme
	Accent string // hex color for the icon badge
}

var testimonials = []Testimonial{
	{
		ID:     1,
		Rating: 5,
		Body:   "Milele Cleaning Services transformed our home! Their attention to detail is incredible, and the team is always professional and friendly.",
		Author: "Phelix M.",
		Role:   "Homeowner",
		Theme:  ThemeResident,
		Accent: "#2563EB",
	},
	{
		ID:     2,
		Rating: 5,
		Body:   "Reliable, thorough, and affordable. We've been using Milele Cleaning Services for our office for 2 years now. Highly recommended!",
		Author: "Victor O.",
		Role:   "Business Owner",
		Theme:  ThemeBusiness,
		Accent: "#16A34A",
	},
	{
		ID:     3,
		Rating: 5,
		Body:   "The deep cleaning service was amazing! They cleaned areas I didn't even know needed attention. Worth every penny.",
		Author: "Emily R.",
		Role:   "Apartment Resident",
		Theme:  ThemeApartment,
		Accent: "#9333EA",
	},
	{
		ID:     4,
		Rating: 5,
		Body:   "Prompt, efficient, and left our office spotless. The team is courteous and always on time.",
		Author: "Sarah K.",
		Role:   "Office Manager",
		Theme:  ThemeBusiness,
		Accent: "#DB2777",
	},
	{
		ID:     5,
		Rating: 5,
		Body:   "My allergies have improved so much since we started using Milele! Highly recommend their deep cleaning service.",
		Author: "John D.",
		Role:   "Homeowner",
		Theme:  ThemeResident,
		Accent: "#CA8A04",
	},
	{
		ID:     6,
		Rating: 5,
		Body:   "Professional and friendly staff. They go above and beyond every time.",
		Author: "Faith L.",
		Role:   "Business Owner",
		Theme:  ThemeBusiness,
		Accent: "#4F46E5",
	},
	{
		ID:     7,
		Rating: 5,
		Body:   "Their flexible scheduling is perfect for my busy family. Always a great job!",
		Author: "Lucy W.",
		Role:   "Homeowner",
		Theme:  ThemeApartment,
		Accent: "#22C55E",
	},
	{
		ID:     8,
		Rating: 5,
		Body:   "Consistently excellent service. Our workspace has never looked better.",
		Author: "Daniel T.",
		Role:   "Office Admin",
		Theme:  ThemeBusiness,
		Accent: "#3B82F6",
	},
}

// Testimonials returns the testimonials in display order.
// The returned slice is a copy; callers may not mutate the store.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// TestimonialCount returns the number of testimonials in the store.
func TestimonialCount() int {
	return len(testimonials)
}
