package utils

import "github.com/tomsarry/content_backend/models"

// DefaultProfile is served when the requested profile is unknown
const DefaultProfile = "teen_dancer"

// Catalog maps a profile key to its ordered recommendation list
type Catalog map[string][]models.Recommendation

// DefaultCatalog returns the canned recommendation lists
func DefaultCatalog() Catalog {
	return Catalog{
		"teen_dancer": {
			{Title: "Latest TikTok Dance Tutorial", Category: "dance", Score: 95, Views: "2.3M"},
			{Title: "Viral Dance Challenge", Category: "dance", Score: 89, Views: "1.8M"},
			{Title: "Pro Dance Tips", Category: "educational", Score: 84, Views: "1.2M"},
		},
		"cooking_enthusiast": {
			{Title: "Quick 5-Minute Recipes", Category: "cooking", Score: 92, Views: "3.1M"},
			{Title: "Amazing Cooking Hacks", Category: "cooking", Score: 87, Views: "2.4M"},
			{Title: "Perfect Baking Tips", Category: "cooking", Score: 83, Views: "1.9M"},
		},
		"fitness_lover": {
			{Title: "10-Minute Home Workout", Category: "fitness", Score: 94, Views: "4.2M"},
			{Title: "Morning Yoga Routine", Category: "fitness", Score: 88, Views: "2.8M"},
			{Title: "Healthy Meal Prep", Category: "health", Score: 82, Views: "1.7M"},
		},
	}
}

// Lookup returns the list for profile. Unknown profiles resolve to
// DefaultProfile; known reports whether profile itself was found
func (c Catalog) Lookup(profile string) (items []models.Recommendation, resolved string, known bool) {
	if items, ok := c[profile]; ok {
		return items, profile, true
	}
	return c[DefaultProfile], DefaultProfile, false
}

// Take returns a copy of items cut like a slice expression items[:n]:
// n past the end keeps everything and a negative n drops that many items
// from the tail
func Take(items []models.Recommendation, n int) []models.Recommendation {
	end := n
	if end > len(items) {
		end = len(items)
	}
	if end < 0 {
		end += len(items)
		if end < 0 {
			end = 0
		}
	}
	out := make([]models.Recommendation, end)
	copy(out, items[:end])
	return out
}
