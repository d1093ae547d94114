package cli

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten chars here", 22, "exactly ten chars here"},
		{"this string is far too long for the column", 20, "this string is fa..."},
	}

	for _, tc := range cases {
		if got := truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != "-" {
		t.Errorf("orDash(empty) = %q", got)
	}
	if got := orDash("30 Days"); got != "30 Days" {
		t.Errorf("orDash = %q", got)
	}
}
