// Package content holds the static copy rendered on the landing page.
package content

import (
	"strings"

	"github.com/vistaarbengaluru/vistaar/internal/models"
)

// Recipient is the label the relay template addresses submissions to.
const Recipient = "Vistaar Bengaluru"

// SectionIDs lists the page sections in document order. Scroll-spy walks them
// in this order, so a later section wins when extents overlap.
var SectionIDs = []string{"home", "services", "about", "portfolio", "contact"}

// Site returns a fresh copy of the landing-page content.
func Site() models.Site {
	sections := make([]models.Section, 0, len(SectionIDs))
	for _, id := range SectionIDs {
		sections = append(sections, models.Section{ID: id, Label: label(id)})
	}

	return models.Site{
		Name:       "Vistaar Bengaluru",
		Logo:       "https://i.ibb.co/DgHQLGKm/Frame-1.png",
		FooterLogo: "https://i.ibb.co/SXC2cYcX/Frame-1-1.png",
		Tagline:    "Building digital experiences that drive growth and success for businesses worldwide.",
		About: "Vistaar Bengaluru is a creative-led digital studio helping startups and small " +
			"businesses scale through impactful design, powerful development, and result-driven " +
			"marketing. Based in India's tech capital, we work with brands across the globe.",
		Address:  "Vijayanagar Bengaluru-560040, India.",
		Sections: sections,
		Services: []models.Service{
			{
				Title:       "Website & App Development",
				Description: "Clean, responsive websites and scalable web apps using modern technologies.",
				Icon:        "code",
				Color:       "blue",
				Gradient:    "from-blue-500 to-cyan-500",
			},
			{
				Title:       "UI/UX Design",
				Description: "Wireframes, design systems, and interactive prototypes built in Figma and Framer.",
				Icon:        "palette",
				Color:       "purple",
				Gradient:    "from-purple-500 to-pink-500",
			},
			{
				Title:       "Domain & Hosting Setup",
				Description: "End-to-end domain configuration and hosting support (GoDaddy, Firebase, Hostinger).",
				Icon:        "globe",
				Color:       "green",
				Gradient:    "from-green-500 to-emerald-500",
			},
			{
				Title:       "Digital Marketing",
				Description: "SEO, Google Ads, social media management, and brand strategy to grow your online presence.",
				Icon:        "trending-up",
				Color:       "orange",
				Gradient:    "from-saffron to-orange-500",
			},
		},
		Stats: []models.Stat{
			{Value: "50+", Label: "Projects Done"},
			{Value: "25+", Label: "Happy Clients"},
			{Value: "2+", Label: "Years Experience"},
		},
		Features: []models.Feature{
			{Title: "Fast Delivery", Subtitle: "Quick turnaround times", Icon: "zap", Gradient: "from-saffron to-orange-400"},
			{Title: "Expert Team", Subtitle: "Skilled professionals", Icon: "users", Gradient: "from-blue-500 to-cyan-500"},
			{Title: "Quality Work", Subtitle: "Premium solutions", Icon: "check-circle", Gradient: "from-green-500 to-emerald-500"},
			{Title: "5-Star Reviews", Subtitle: "Client satisfaction", Icon: "star", Gradient: "from-purple-500 to-pink-500"},
		},
		Projects: []models.Project{
			{
				Title:       "Landing Page for Fashion Brand",
				Description: "Modern e-commerce landing page with seamless user experience and conversion optimization.",
				Image:       "https://pasteimg.com/images/2025/07/02/fashion.png",
				Tags:        []string{"Web Design", "E-commerce", "UI/UX"},
				Gradient:    "from-pink-500 to-rose-500",
			},
			{
				Title:       "App UI for Finance Startup",
				Description: "Clean and intuitive mobile app interface for a fintech startup with focus on user security.",
				Image:       "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=600&h=400&fit=crop",
				Tags:        []string{"Mobile App", "Fintech", "UI Design"},
				Gradient:    "from-blue-500 to-cyan-500",
			},
			{
				Title:       "WordPress Site for Local Business",
				Description: "Professional business website with integrated booking system and local SEO optimization.",
				Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop",
				Tags:        []string{"WordPress", "SEO", "Business"},
				Gradient:    "from-green-500 to-emerald-500",
			},
		},
		Channels: []models.Channel{
			{Name: "Email", Detail: "vistaarbengaluru@gmail.com", URL: "mailto:hello@vistaarbengaluru.in", Icon: "mail"},
			{Name: "WhatsApp", Detail: "Quick support & consultation", URL: "https://wa.me/+919449271752", Icon: "whatsapp"},
			{Name: "LinkedIn", Detail: "Connect professionally", URL: "https://linkedin.com/company/vistaar-bengaluru", Icon: "linkedin"},
		},
		FooterLinks: []string{"Web Development", "UI/UX Design", "Digital Marketing", "Domain & Hosting"},
		Copyright:   2025,
	}
}

func label(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
