package model

import (
	"io"
	"time"
)

type Restaurant struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Category   string    `json:"category" db:"category"`
	City       string    `json:"city" db:"city"`
	Price      int       `json:"price" db:"price"`
	AvgRating  float64   `json:"avgRating" db:"avg_rating"`
	NumRatings int       `json:"numRatings" db:"num_ratings"`
	SumRating  float64   `json:"sumRating" db:"sum_rating"`
	Photo      string    `json:"photo" db:"photo"`
	Timestamp  time.Time `json:"timestamp" db:"created_at"`
}

type Rating struct {
	ID           string    `json:"id" db:"id"`
	RestaurantID string    `json:"restaurantId" db:"restaurant_id"`
	Rating       float64   `json:"rating" db:"rating"`
	Text         string    `json:"text" db:"text"`
	UserID       string    `json:"userId" db:"user_id"`
	Timestamp    time.Time `json:"timestamp" db:"created_at"`
}

// Review is a rating submission before it is stored.
type Review struct {
	Rating float64 `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Text   string  `json:"text" form:"text" validate:"required,max=2000"`
	UserID string  `json:"userId" form:"-"`
}

// Aggregate is the derived rating state of a restaurant.
type Aggregate struct {
	NumRatings int     `json:"numRatings" db:"num_ratings"`
	SumRating  float64 `json:"sumRating" db:"sum_rating"`
	AvgRating  float64 `json:"avgRating" db:"avg_rating"`
}

// Filters narrow and order the restaurant listing. Empty fields are ignored.
type Filters struct {
	Category string `json:"category" query:"category"`
	City     string `json:"city" query:"city"`
	Price    string `json:"price" query:"price"`
	Sort     string `json:"sort" query:"sort"`
}

const (
	SortByRating = "Rating"
	SortByReview = "Review"
)

type Image struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type RestaurantDetail struct {
	Restaurant Restaurant `json:"restaurant"`
	Reviews    []Rating   `json:"reviews"`
}

type ImageResponse struct {
	Photo string `json:"photo"`
}

type Summary struct {
	Text      string `json:"summary"`
	Generated bool   `json:"generated"`
}

type SamplesResponse struct {
	Restaurants int `json:"restaurants"`
}

// Sample is a generated restaurant together with its ratings. Its aggregate
// already reflects the ratings.
type Sample struct {
	Restaurant Restaurant
	Ratings    []Rating
}
