package analytics

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		part, whole int
		want        float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 10, 0},
		{3, 10, 30},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{5, 4, 100},
	}
	for _, c := range cases {
		if got := percent(c.part, c.whole); got != c.want {
			t.Fatalf("percent(%d, %d) = %v, want %v", c.part, c.whole, got, c.want)
		}
	}
}
