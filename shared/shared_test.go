package shared_test

import (
	"testing"

	"github.com/kadynthorpe/starter-restaurant-reservation/shared"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "formatted phone number",
			input:    "(202) 555-0100",
			expected: "2025550100",
		},
		{
			name:     "bare digits unchanged",
			input:    "2025550100",
			expected: "2025550100",
		},
		{
			name:     "dots and spaces stripped",
			input:    "202.555 0100",
			expected: "2025550100",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no digits at all",
			input:    "abc-def",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.DigitsOnly(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("reservation:get", "42"); got != "reservation:get:42" {
		t.Errorf("expected reservation:get:42, got %s", got)
	}

	if got := shared.BuildCacheKey("table:gets"); got != "table:gets" {
		t.Errorf("expected table:gets, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{SortBy: "reservation_time", SortDir: "ASC"}
	filter := shared.FilterByID(int64(1), "reservation_id", "reservations")

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	if first != second {
		t.Errorf("expected identical inputs to produce identical keys, got %q and %q", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("reservation:gets", params, shared.FilterByID(int64(2), "reservation_id", "reservations"))
	if first == other {
		t.Error("expected different filters to produce different keys")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(42), "reservation_id", "reservations")

	where, args := filter.GetWhereClause()

	expectedWhere := "(reservations.reservation_id = :reservation_id)"
	if where != expectedWhere {
		t.Errorf("expected where clause %q, got %q", expectedWhere, where)
	}

	if args["reservation_id"] != int64(42) {
		t.Errorf("expected arg 42, got %v", args["reservation_id"])
	}
}
