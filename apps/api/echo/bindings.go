package echoapi

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/user"
)

var (
	orderingParam = "ordering"

	// accepted date formats of query params
	dateLayouts = []string{time.RFC3339, "2006-01-02"}
)

type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return
	}

	for _, field := range strings.Split(val[0], ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		ord.Orderings = append(ord.Orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
}

// UsersQuery holds the raw query params of the users listing.
type UsersQuery struct {
	Search      string `query:"search"`
	Role        string `query:"role"`
	CreatedFrom string `query:"created_from"`
	CreatedTo   string `query:"created_to"`
}

func (q UsersQuery) Filter() (*user.QueryFilter, error) {
	filter := &user.QueryFilter{Search: q.Search, Role: user.Role(q.Role)}

	var fldErrs []core.FieldError
	var ok bool
	if filter.CreatedFrom, ok = parseDate(q.CreatedFrom); !ok {
		fldErrs = append(fldErrs, core.FieldError{Field: "created_from", Error: "invalid date"})
	}
	if filter.CreatedTo, ok = parseDate(q.CreatedTo); !ok {
		fldErrs = append(fldErrs, core.FieldError{Field: "created_to", Error: "invalid date"})
	}
	if fldErrs != nil {
		return nil, core.NewValidationError(nil, fldErrs...)
	}
	return filter, nil
}

// parseDate accepts an empty string as the zero time.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
