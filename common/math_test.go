package common

import "testing"

func TestNearlyEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 3, 3, true},
		{"zero_and_tiny", 0, 1e-6, false},
		{"tiny_relative", 0.001, 0.00100000001, true},
		{"tiny_relative_miss", 0.001, 0.001009, false},
		{"zero_and_small", 0, 1e-4, false},
		{"relative_large", 100000, 100000.5, true},
		{"relative_large_miss", 100000, 100002, false},
		{"negative", -10, -10.00001, true},
		{"sign_flip", -1, 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NearlyEqual(c.a, c.b); got != c.want {
				t.Fatalf("NearlyEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}
