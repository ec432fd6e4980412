package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex      = "index.html"
	PageRestaurant = "restaurant.html"
	PageNotFound   = "notfound.html"
	// Fragments render without the layout.
	FragmentSummary  = "summary.html"
	FragmentSkeleton = "skeleton.html"
)

var (
	Categories = []string{"Italian", "Chinese", "Japanese", "Mexican", "Indian", "Mediterranean", "Caribbean", "Cajun", "German", "Russian", "Cuban", "Organic", "Tapas"}
	Cities     = []string{"Albuquerque", "Arlington", "Atlanta", "Austin", "Baltimore", "Boston", "Charlotte", "Chicago", "Cleveland", "Colorado Springs", "Columbus", "Dallas", "Denver", "Detroit", "El Paso", "Fort Worth", "Fresno", "Houston", "Indianapolis", "Jacksonville", "Kansas City", "Las Vegas", "Long Island", "Los Angeles", "Louisville", "Memphis", "Mesa", "Miami", "Milwaukee", "Nashville", "New York", "Oakland", "Oklahoma", "Omaha", "Philadelphia", "Phoenix", "Raleigh", "Sacramento", "San Antonio", "San Diego", "San Francisco", "San Jose", "Tucson", "Tulsa", "Virginia Beach", "Washington"}
	Prices     = []string{"$", "$$", "$$$", "$$$$"}
	Sorts      = []string{model.SortByRating, model.SortByReview}
)

// Header is the shared page chrome.
type Header struct {
	User          *auth.User
	SignInEnabled bool
}

type IndexPage struct {
	Header
	Restaurants []model.Restaurant
	Filters     model.Filters
}

type NotFoundPage struct {
	Header
}

type RestaurantPage struct {
	Header
	Restaurant model.Restaurant
	Reviews    []model.Rating
}

var funcs = template.FuncMap{
	"stars":      stars,
	"price":      func(tier int) string { return strings.Repeat("$", tier) },
	"categories": func() []string { return Categories },
	"cities":     func() []string { return Cities },
	"prices":     func() []string { return Prices },
	"sorts":      func() []string { return Sorts },
	"rating":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
}

// stars renders a 0-5 rating as filled and empty stars.
func stars(v float64) string {
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageIndex, PageRestaurant, PageNotFound} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+FragmentSkeleton, "templates/"+page)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", page)
		}
		r.pages[page] = t.Lookup("layout")
	}
	for _, fragment := range []string{FragmentSummary, FragmentSkeleton} {
		t, err := template.New(fragment).Funcs(funcs).ParseFS(templateFS, "templates/"+fragment)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", fragment)
		}
		r.pages[fragment] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	return t.Execute(w, data)
}

// Static holds the browser scripts and styles.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
