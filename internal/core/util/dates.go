package util

import (
	"errors"
	"time"
)

// Layouts accepted for due dates and range bounds, tried in order.
// Matches the ISO date strings clients actually send.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var ErrUnparseableDate = errors.New("unparseable date")

func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrUnparseableDate
}
