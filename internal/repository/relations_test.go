package repository

import "testing"

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 1, want: "?"},
		{n: 2, want: "?,?"},
		{n: 5, want: "?,?,?,?,?"},
		{n: 0, want: ""},
	}
	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
