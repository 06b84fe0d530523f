package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRand(t *testing.T) {
	cases := map[float64]string{
		5500:      "R5,500",
		15000:     "R15,000",
		1500:      "R1,500",
		0:         "R0",
		999.5:     "R1,000",
		-20000:    "-R20,000",
		1234567.4: "R1,234,567",
	}
	for in, want := range cases {
		require.Equal(t, want, Rand(in), "Rand(%v)", in)
	}
	require.Equal(t, "R0", Rand(math.NaN()))
	require.Equal(t, "R0", Rand(math.Inf(1)))
}

func TestNumberAndPercent(t *testing.T) {
	require.Equal(t, "10,000", Number(10000))
	require.Equal(t, "100", Number(100))
	require.Equal(t, "1.21%", Percent(1.21, 2))
	require.Equal(t, "21%", Percent(21, 0))
	require.Equal(t, "0.5", Decimal(0.5, 1))
}

func TestDates(t *testing.T) {
	d := time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "30 October 2025", Date(d))
	require.Equal(t, "2025-10-30", ISODate(d))
	require.Empty(t, Date(time.Time{}))
	require.Empty(t, ISODate(time.Time{}))
}
