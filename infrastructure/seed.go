package infrastructure

import (
	"fmt"
	"log"

	"opportunity-finder/domain"
)

func strptr(s string) *string { return &s }

var seedOpportunities = []domain.InsertOpportunity{
	{
		Title:           "Global Youth Leadership Summit 2025",
		Organization:    "United Nations Foundation",
		Description:     "An intensive leadership program bringing together young changemakers from around the world to develop solutions for global challenges.",
		Location:        "New York, USA",
		Country:         "USA",
		Deadline:        "March 15, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "high",
		Funding:         "fully-funded",
		Language:        domain.StringList{"English"},
		Duration:        "2 weeks",
		AgeRange:        "16-24",
		CareerArea:      domain.StringList{"Leadership", "International Relations"},
		URL:             "https://example.com",
	},
	{
		Title:           "Women in STEM Summer Program",
		Organization:    "MIT TechWomen Initiative",
		Description:     "Hands-on coding and engineering workshops designed to empower young women pursuing STEM careers.",
		Location:        "Boston, USA",
		Country:         "USA",
		Deadline:        "April 1, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "medium",
		Funding:         "fully-funded",
		Language:        domain.StringList{"English"},
		Duration:        "6 weeks",
		AgeRange:        "15-18",
		CareerArea:      domain.StringList{"STEM", "Education"},
		URL:             "https://example.com",
	},
	{
		Title:           "Community Health Volunteer Program",
		Organization:    "Global Health Corps",
		Description:     "Work with local healthcare providers to improve community health outcomes in underserved areas.",
		Location:        "Various locations",
		Country:         "Multiple",
		Deadline:        "May 30, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "low",
		Funding:         "free",
		Language:        domain.StringList{"English", "Spanish"},
		Duration:        "3 months",
		AgeRange:        "18-25",
		CareerArea:      domain.StringList{"Healthcare", "Social Impact"},
		URL:             "https://example.com",
	},
	{
		Title:           "Creative Arts Intensive Workshop",
		Organization:    "International Arts Foundation",
		Description:     "Explore various artistic mediums under the guidance of renowned international artists.",
		Location:        "Barcelona, Spain",
		Country:         "Spain",
		Deadline:        "Closed",
		ReopenDate:      strptr("June 1, 2025"),
		DeadlineStatus:  "reopening",
		Competitiveness: "medium",
		Funding:         "paid",
		Language:        domain.StringList{"English"},
		Duration:        "4 weeks",
		AgeRange:        "16-22",
		CareerArea:      domain.StringList{"Arts"},
		URL:             "https://example.com",
	},
	{
		Title:           "Tech for Good Hackathon",
		Organization:    "Code for All",
		Description:     "Build technology solutions for social good in an intense 48-hour collaborative hackathon.",
		Location:        "Virtual",
		Country:         "Global",
		Deadline:        "February 20, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "low",
		Funding:         "free",
		Language:        domain.StringList{"English"},
		Duration:        "2 days",
		AgeRange:        "14-30",
		CareerArea:      domain.StringList{"STEM", "Social Impact"},
		URL:             "https://example.com",
	},
	{
		Title:           "Business Leadership Academy",
		Organization:    "Future Entrepreneurs Network",
		Description:     "Learn entrepreneurship fundamentals and develop your own business plan with mentorship from industry leaders.",
		Location:        "London, UK",
		Country:         "UK",
		Deadline:        "March 30, 2025",
		DeadlineStatus:  "closed",
		Competitiveness: "high",
		Funding:         "fully-funded",
		Language:        domain.StringList{"English"},
		Duration:        "5 weeks",
		AgeRange:        "17-23",
		CareerArea:      domain.StringList{"Business", "Leadership"},
		URL:             "https://example.com",
	},
	{
		Title:           "Amazon Conservation Volunteer Program",
		Organization:    "Ecuador Wildlife Foundation",
		Description:     "Help protect the Amazon rainforest and work with local communities on sustainable conservation efforts.",
		Location:        "Tena, Ecuador",
		Country:         "Ecuador",
		Deadline:        "April 15, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "low",
		Funding:         "free",
		Language:        domain.StringList{"Spanish", "English"},
		Duration:        "4 weeks",
		AgeRange:        "18-30",
		CareerArea:      domain.StringList{"Social Impact", "Education"},
		URL:             "https://example.com",
	},
	{
		Title:           "Galápagos Marine Research Internship",
		Organization:    "Charles Darwin Foundation",
		Description:     "Conduct marine biology research in one of the world's most unique ecosystems.",
		Location:        "Galápagos Islands, Ecuador",
		Country:         "Ecuador",
		Deadline:        "May 1, 2025",
		DeadlineStatus:  "open",
		Competitiveness: "high",
		Funding:         "fully-funded",
		Language:        domain.StringList{"English"},
		Duration:        "8 weeks",
		AgeRange:        "18-25",
		CareerArea:      domain.StringList{"STEM", "Social Impact"},
		URL:             "https://example.com",
	},
}

// SeedOpportunities inserts the starter dataset when the store is
// empty. Already-populated stores are left alone.
func SeedOpportunities(store domain.Storage) error {
	existing, err := store.GetAllOpportunities()
	if err != nil {
		return fmt.Errorf("failed to check existing opportunities: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Store already contains %d opportunities, skipping seed", len(existing))
		return nil
	}

	log.Println("Seeding store with initial opportunities...")
	for _, opp := range seedOpportunities {
		if _, err := store.CreateOpportunity(opp); err != nil {
			return fmt.Errorf("failed to seed %q: %w", opp.Title, err)
		}
	}
	log.Printf("Seeded %d opportunities", len(seedOpportunities))
	return nil
}
