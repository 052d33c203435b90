package postgres

import (
	"math"
	"strconv"
	"strings"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

const propertySearchBase = `SELECT properties.*, avg(property_reviews.rating) as average_rating
FROM properties
JOIN property_reviews ON properties.id = property_id`

// predicate renders one filter condition given its placeholder, e.g. "$2".
type predicate struct {
	present bool
	value   any
	render  func(ph string) string
}

// query accumulates bound arguments and hands out their placeholders.
type query struct {
	sb   strings.Builder
	args []any
}

func (q *query) bind(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *query) line(s string) {
	q.sb.WriteByte('\n')
	q.sb.WriteString(s)
}

// toCents converts whole currency units to the subunits cost_per_night is stored in.
func toCents(units float64) int64 {
	return int64(math.Round(units * 100))
}

// rowFilters returns the WHERE-level filters in the order they are applied.
func rowFilters(opts entity.PropertySearch) []predicate {
	return []predicate{
		{
			present: opts.City != "",
			value:   "%" + opts.City + "%",
			render:  func(ph string) string { return "city ILIKE " + ph },
		},
		{
			present: opts.OwnerID != 0,
			value:   opts.OwnerID,
			render:  func(ph string) string { return "owner_id = " + ph },
		},
		{
			present: opts.MinimumPricePerNight != 0,
			value:   toCents(opts.MinimumPricePerNight),
			render:  func(ph string) string { return "cost_per_night >= " + ph },
		},
		{
			present: opts.MaximumPricePerNight != 0,
			value:   toCents(opts.MaximumPricePerNight),
			render:  func(ph string) string { return "cost_per_night <= " + ph },
		},
	}
}

// BuildPropertySearch renders the catalog search statement and its arguments.
//
// The first present row filter opens the WHERE clause and every later one is
// joined with AND. The rating filter applies to the aggregate, so it goes to
// HAVING. The limit is always the last argument.
func BuildPropertySearch(opts entity.PropertySearch, limit int) (string, []any) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	q := &query{}
	q.sb.WriteString(propertySearchBase)

	keyword := "WHERE "
	for _, p := range rowFilters(opts) {
		if !p.present {
			continue
		}
		q.line(keyword + p.render(q.bind(p.value)))
		keyword = "AND "
	}

	q.line("GROUP BY properties.id")
	if opts.MinimumRating != 0 {
		q.line("HAVING avg(property_reviews.rating) >= " + q.bind(opts.MinimumRating))
	}
	q.line("ORDER BY cost_per_night")
	q.line("LIMIT " + q.bind(limit) + ";")

	return q.sb.String(), q.args
}
