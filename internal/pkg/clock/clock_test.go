package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},   // not zero-padded
		{"09-00", 0, true},  // wrong separator
		{"09:00:00", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMinutes(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			assert.ErrorIs(t, err, ErrInvalidClock)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestHour(t *testing.T) {
	h, err := Hour("19:45")
	require.NoError(t, err)
	assert.Equal(t, 19, h)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("08:15"))
	assert.False(t, Valid("8:15"))
}
