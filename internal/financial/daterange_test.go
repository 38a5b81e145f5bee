package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2025-03-10", DateOnly("2025-03-10T14:22:05Z"))
	assert.Equal(t, "2025-03-10", DateOnly("2025-03-10"))
	assert.Equal(t, "", DateOnly(""))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		start string
		end   string
		want  bool
	}{
		{"inside", "2025-01-15", "2025-01-01", "2025-01-31", true},
		{"on start bound", "2025-01-01", "2025-01-01", "2025-01-31", true},
		{"on end bound", "2025-01-31", "2025-01-01", "2025-01-31", true},
		{"before", "2024-12-31", "2025-01-01", "2025-01-31", false},
		{"after", "2025-02-01", "2025-01-01", "2025-01-31", false},
		{"open start", "1999-06-01", "", "2025-01-31", true},
		{"open end", "2099-06-01", "2025-01-01", "", true},
		{"both open", "2025-06-01", "", "", true},
		{"timestamp date", "2025-01-15T09:30:00Z", "2025-01-01", "2025-01-31", true},
		{"unparseable date excluded", "not-a-date", "", "", false},
		{"empty date excluded", "", "", "", false},
		{"unparseable start excludes", "2025-01-15", "garbage", "2025-01-31", false},
		{"unparseable end excludes", "2025-01-15", "2025-01-01", "garbage", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.date, tt.start, tt.end))
		})
	}
}

func TestFilterByRange(t *testing.T) {
	type rec struct{ Date string }
	records := []rec{
		{"2025-01-05"},
		{"2025-01-20"},
		{"2025-02-01"},
		{"broken"},
	}

	got := FilterByRange(records, "2025-01-01", "2025-01-31", func(r rec) string { return r.Date })
	assert.Equal(t, []rec{{"2025-01-05"}, {"2025-01-20"}}, got)

	all := FilterByRange(records, "", "", func(r rec) string { return r.Date })
	assert.Len(t, all, 3, "broken date stays excluded even with open bounds")
}
