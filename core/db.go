package core

import (
	"strings"
)

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// OrderBy renders orderings as an ORDER BY expression, keeping only the fields listed in allowed.
// fallback is used when nothing survives.
func OrderBy(ordering []DBOrdering, allowed map[string]string, fallback DBOrdering) string {
	orderList := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		col, ok := allowed[ord.Field]
		if !ok {
			continue
		}
		orderList = append(orderList, DBOrdering{Field: col, Ascending: ord.Ascending}.String())
	}
	if len(orderList) == 0 {
		return fallback.String()
	}
	return strings.Join(orderList, ", ")
}
