package metrics

import "testing"

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/recipes/64f1b2a3c4d5e6f708091a0b", "/recipes/{id}"},
		{"/recipes/64F1B2A3C4D5E6F708091A0B", "/recipes/{id}"},
		{"/recipes/64f1b2a3c4d5e6f708091a0b/", "/recipes/{id}/"},
		{"/recipes", "/recipes"},
		{"/recipes/not-an-id", "/recipes/not-an-id"},
		// 23 hex chars is not an ObjectID
		{"/recipes/64f1b2a3c4d5e6f708091a0", "/recipes/64f1b2a3c4d5e6f708091a0"},
		{"/auth/login", "/auth/login"},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
