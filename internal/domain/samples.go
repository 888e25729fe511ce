package domain

import "time"

// SampleDesigners returns the bundled designer dataset. The server seeds an empty database
// with it; the client falls back to its listings when the catalog cannot be fetched.
// Each call returns fresh slices.
func SampleDesigners() []Designer {
	return []Designer{
		{
			Listing: Listing{
				ID:          1,
				Name:        "Sarah Johnson",
				Title:       "Senior Interior Designer",
				Location:    "Mumbai, India",
				Description: "Specializing in modern residential spaces with a focus on sustainable materials and smart home integration.",
				Tags:        []string{"Modern", "Sustainable", "Smart Homes"},
				Rating:      4.8,
				Projects:    127,
				Clients:     89,
				Price:       "₹2,500",
				PriceUnit:   "per sq ft",
				Avatar:      "SJ",
			},
			Portfolio: []string{"https://example.com/portfolio1.jpg", "https://example.com/portfolio2.jpg"},
			Contact:   Contact{Email: "sarah.johnson@example.com", Phone: "+91-9876543210"},
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			IsActive:  true,
		},
		{
			Listing: Listing{
				ID:          2,
				Name:        "Rajesh Patel",
				Title:       "Luxury Space Designer",
				Location:    "Delhi, India",
				Description: "Expert in creating luxurious commercial and residential spaces with attention to detail and premium finishes.",
				Tags:        []string{"Luxury", "Commercial", "Premium"},
				Rating:      4.9,
				Projects:    203,
				Clients:     156,
				Price:       "₹3,800",
				PriceUnit:   "per sq ft",
				Avatar:      "RP",
			},
			Portfolio: []string{"https://example.com/portfolio3.jpg", "https://example.com/portfolio4.jpg"},
			Contact:   Contact{Email: "rajesh.patel@example.com", Phone: "+91-9876543211"},
			CreatedAt: time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
			IsActive:  true,
		},
		{
			Listing: Listing{
				ID:          3,
				Name:        "Priya Sharma",
				Title:       "Minimalist Design Expert",
				Location:    "Bangalore, India",
				Description: "Creating clean, functional spaces that maximize natural light and promote wellness through thoughtful design.",
				Tags:        []string{"Minimalist", "Wellness", "Natural Light"},
				Rating:      4.7,
				Projects:    98,
				Clients:     67,
				Price:       "₹2,200",
				PriceUnit:   "per sq ft",
				Avatar:      "PS",
			},
			Portfolio: []string{"https://example.com/portfolio5.jpg", "https://example.com/portfolio6.jpg"},
			Contact:   Contact{Email: "priya.sharma@example.com", Phone: "+91-9876543212"},
			CreatedAt: time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
			IsActive:  true,
		},
		{
			Listing: Listing{
				ID:          4,
				Name:        "Arjun Menon",
				Title:       "Traditional Architect",
				Location:    "Kochi, India",
				Description: "Blending traditional Indian architecture with contemporary functionality for timeless living spaces.",
				Tags:        []string{"Traditional", "Architecture", "Cultural"},
				Rating:      4.6,
				Projects:    156,
				Clients:     112,
				Price:       "₹2,800",
				PriceUnit:   "per sq ft",
				Avatar:      "AM",
			},
			Portfolio: []string{"https://example.com/portfolio7.jpg", "https://example.com/portfolio8.jpg"},
			Contact:   Contact{Email: "arjun.menon@example.com", Phone: "+91-9876543213"},
			CreatedAt: time.Date(2024, 1, 5, 16, 45, 0, 0, time.UTC),
			IsActive:  true,
		},
		{
			Listing: Listing{
				ID:          5,
				Name:        "Kavya Reddy",
				Title:       "Sustainable Designer",
				Location:    "Hyderabad, India",
				Description: "Passionate about eco-friendly designs using recycled materials and energy-efficient solutions.",
				Tags:        []string{"Sustainable", "Eco-friendly", "Energy Efficient"},
				Rating:      4.8,
				Projects:    134,
				Clients:     98,
				Price:       "₹2,600",
				PriceUnit:   "per sq ft",
				Avatar:      "KR",
			},
			Portfolio: []string{"https://example.com/portfolio9.jpg", "https://example.com/portfolio10.jpg"},
			Contact:   Contact{Email: "kavya.reddy@example.com", Phone: "+91-9876543214"},
			CreatedAt: time.Date(2024, 1, 12, 11, 30, 0, 0, time.UTC),
			IsActive:  true,
		},
	}
}

// SampleListings is SampleDesigners reduced to catalog listings, in bundle order.
func SampleListings() []Listing {
	designers := SampleDesigners()
	out := make([]Listing, len(designers))
	for i, d := range designers {
		out[i] = d.Listing
	}
	return out
}
