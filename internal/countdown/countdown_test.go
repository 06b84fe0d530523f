package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"endpointmedia.co.za/web/internal/config"
)

func TestUntil(t *testing.T) {
	end := DefaultEnd

	tests := []struct {
		name string
		now  time.Time
		want Remaining
	}{
		{
			name: "two days out",
			now:  time.Date(2025, 12, 13, 20, 29, 30, 0, config.SAST),
			want: Remaining{Days: 2, Hours: 3, Minutes: 30},
		},
		{
			name: "same instant in UTC",
			now:  time.Date(2025, 12, 13, 18, 29, 30, 0, time.UTC),
			want: Remaining{Days: 2, Hours: 3, Minutes: 30},
		},
		{
			name: "under a minute left",
			now:  end.Add(-30 * time.Second),
			want: Remaining{},
		},
		{
			name: "exactly at end",
			now:  end,
			want: Remaining{Expired: true},
		},
		{
			name: "long past",
			now:  end.Add(72 * time.Hour),
			want: Remaining{Expired: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Until(tt.now, end))
		})
	}
}

func TestClockDefaults(t *testing.T) {
	fixed := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	c := New(time.Time{}, func() time.Time { return fixed })
	require.True(t, c.End.Equal(DefaultEnd))
	r := c.Remaining()
	require.False(t, r.Expired)
	// 1 Dec 00:00 UTC is 02:00 SAST; end is 15 Dec 23:59:59 SAST
	require.Equal(t, Remaining{Days: 14, Hours: 21, Minutes: 59}, r)
}
