package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
		{0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth_FebruaryTracksLeapYear(t *testing.T) {
	t.Parallel()

	for _, y := range []int{1900, 2000, 2023, 2024} {
		got := DaysInMonth(y, 2)
		assert.Equal(t, IsLeapYear(y), got == 29, "year %d: got %d days", y, got)
	}
}

func TestDaysInMonth_MatchesGregorianTable(t *testing.T) {
	t.Parallel()

	for y := 1890; y <= 2110; y++ {
		for m := 1; m <= 12; m++ {
			// Day 0 of the next month is the last day of this one.
			want := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			got := DaysInMonth(y, m)
			require.Equal(t, want, got, "%04d-%02d", y, m)
			require.Contains(t, []int{28, 29, 30, 31}, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 29, Month: 2, Year: 2024}, d)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, "29.02.2024", d.Dotted())

	for _, bad := range []string{"", "2023-02-29", "2024-13-01", "2024-04-31", "2024-2-1", "24-02-01", "2024-00-10"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Date{Day: 31, Month: 12, Year: 1999}.Valid())
	assert.False(t, Date{Day: 0, Month: 1, Year: 2000}.Valid())
	assert.False(t, Date{Day: 29, Month: 2, Year: 1900}.Valid())
	assert.False(t, Date{Day: 1, Month: 1, Year: -1}.Valid())
}
