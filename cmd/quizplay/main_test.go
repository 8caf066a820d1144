package main

import "testing"

func TestTarget(t *testing.T) {
	cases := []struct {
		server, arg string
		base, id    string
		wantErr     bool
	}{
		{"http://localhost:8000/", "3", "http://localhost:8000", "3", false},
		{"http://localhost:8000", "https://quiz.example.com/play/12", "https://quiz.example.com", "12", false},
		{"http://localhost:8000", "/play/7", "http://localhost:8000", "7", false},
		{"http://localhost:8000", "http://localhost:8000/create", "", "", true},
		{"http://localhost:8000", "http://localhost:8000/play/", "", "", true},
	}
	for _, tc := range cases {
		base, id, err := target(tc.server, tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("target(%q): err = %v", tc.arg, err)
			continue
		}
		if base != tc.base || id != tc.id {
			t.Errorf("target(%q) = %q, %q; want %q, %q", tc.arg, base, id, tc.base, tc.id)
		}
	}
}
