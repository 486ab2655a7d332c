package helpers

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0"},
		{9900, "$99"},
		{125000000, "$1,250,000"},
		{78500000, "$785,000"},
		{100000000000, "$1,000,000,000"},
		{-45000000, "-$450,000"},
	}

	for _, c := range cases {
		if got := FormatPrice(c.cents); got != c.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestFormatArea(t *testing.T) {
	if got := FormatArea(120); got != "120 m²" {
		t.Errorf("FormatArea(120) = %q", got)
	}
}

func TestFormatBedsBaths(t *testing.T) {
	if got := FormatBedsBaths(3, 2); got != "3 bd · 2 ba" {
		t.Errorf("FormatBedsBaths(3, 2) = %q", got)
	}
}

func TestMinMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is broken")
	}
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is broken")
	}
}
