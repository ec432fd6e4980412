package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

var (
	cities = []string{
		"Albuquerque", "Arlington", "Atlanta", "Austin", "Baltimore", "Boston",
		"Charlotte", "Chicago", "Cleveland", "Colorado Springs", "Columbus",
		"Dallas", "Denver", "Detroit", "El Paso", "Fort Worth", "Fresno",
		"Houston", "Indianapolis", "Jacksonville", "Kansas City", "Las Vegas",
		"Long Beach", "Los Angeles", "Louisville", "Memphis", "Mesa", "Miami",
		"Milwaukee", "Nashville", "New York", "Oakland", "Oklahoma", "Omaha",
		"Philadelphia", "Phoenix", "Portland", "Raleigh", "Sacramento",
		"San Antonio", "San Diego", "San Francisco", "San Jose", "Tucson",
		"Tulsa", "Virginia Beach", "Washington",
	}

	categories = []string{
		"Brunch", "Burgers", "Coffee", "Deli", "Dim Sum", "Indian", "Italian",
		"Mediterranean", "Mexican", "Pizza", "Ramen", "Sushi",
	}

	namePrefixes = []string{
		"Savory", "Gourmet", "Delecatable", "Mouthwatering", "Juicy", "Tender",
		"Tasty", "Full Bellies", "Bigger Bites", "Friendly", "Fast", "Tonight's",
	}

	nameSuffixes = []string{
		"Bar", "Cafe", "Grill", "Drive Thru", "Kitchen", "Eats", "Diner",
		"Bistro", "Place", "Spot", "Corner", "Table",
	}

	reviews = []struct {
		rating float64
		text   string
	}{
		{5, "This was awesome! Would come back."},
		{5, "The food was great and the staff were friendly."},
		{4, "Really good food, a bit pricey."},
		{4, "Solid spot for a quick bite."},
		{3, "It was fine. Nothing special."},
		{3, "Service was slow but the dishes were decent."},
		{2, "Portions were small and the food was cold."},
		{2, "Would not recommend, too noisy."},
		{1, "Terrible experience. Never again."},
	}
)

const photoBaseURL = "https://storage.googleapis.com/firestorequickstarts.appspot.com/food_%d.png"

// Generate builds n random restaurants, each with up to five ratings and a
// matching aggregate. Timestamps are spread over the last week.
func Generate(rnd *rand.Rand, n int, now time.Time) []model.Sample {
	out := make([]model.Sample, 0, n)
	for i := 0; i < n; i++ {
		created := now.Add(-time.Duration(rnd.Int63n(int64(7 * 24 * time.Hour))))

		r := model.Restaurant{
			Name:      pick(rnd, namePrefixes) + " " + pick(rnd, nameSuffixes),
			Category:  pick(rnd, categories),
			City:      pick(rnd, cities),
			Price:     rnd.Intn(4) + 1,
			Photo:     fmt.Sprintf(photoBaseURL, rnd.Intn(22)+1),
			Timestamp: created,
		}

		var ratings []model.Rating
		numRatings := rnd.Intn(6)
		for j := 0; j < numRatings; j++ {
			rv := reviews[rnd.Intn(len(reviews))]
			ratings = append(ratings, model.Rating{
				Rating:    rv.rating,
				Text:      rv.text,
				UserID:    fmt.Sprintf("sample-user-%d", rnd.Intn(1000)),
				Timestamp: created.Add(time.Duration(j+1) * time.Hour),
			})
			r.SumRating += rv.rating
		}
		r.NumRatings = len(ratings)
		if r.NumRatings > 0 {
			r.AvgRating = r.SumRating / float64(r.NumRatings)
		}
		out = append(out, model.Sample{Restaurant: r, Ratings: ratings})
	}
	return out
}

func pick(rnd *rand.Rand, from []string) string {
	return from[rnd.Intn(len(from))]
}
