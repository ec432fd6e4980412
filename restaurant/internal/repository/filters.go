package repository

import (
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

// ApplyQueryFilters adds one equality predicate per non-empty filter and the
// requested ordering. Price is given as a run of "$" signs and matched by its
// length.
func ApplyQueryFilters(q sq.SelectBuilder, f model.Filters) sq.SelectBuilder {
	if f.Category != "" {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	if f.City != "" {
		q = q.Where(sq.Eq{"city": f.City})
	}
	if f.Price != "" {
		q = q.Where(sq.Eq{"price": utf8.RuneCountInString(f.Price)})
	}
	if f.Sort == model.SortByReview {
		return q.OrderBy("num_ratings desc")
	}
	return q.OrderBy("avg_rating desc")
}
