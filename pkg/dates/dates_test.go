package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Time
		expectErr bool
	}{
		{name: "Valid date", input: "2024-01-05", expected: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding spaces", input: " 2024-01-05 ", expected: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Time of day is rejected", input: "2024-01-05T10:00:00Z", expectErr: true},
		{name: "Impossible day", input: "2024-02-30", expectErr: true},
		{name: "Garbage", input: "yesterday", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				require.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCanonicalize(t *testing.T) {
	days, err := Canonicalize([]string{"2024-01-06", "2024-01-05", "2024-01-06"})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
	}, days)

	_, err = Canonicalize(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Canonicalize([]string{"2024-01-05", "05/01/2024"})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("PET", -5*60*60)
	got := Day(time.Date(2024, 1, 5, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-01-05", Format(got))
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseOptional("nope")
	assert.Error(t, err)
}
