package player

import "testing"

func TestRouteFor(t *testing.T) {
	cases := map[string]Route{
		"/play/12":      RoutePlayer,
		"/create":       RouteAuthor,
		"/play":         RouteNone,
		"/":             RouteNone,
		"/flags":        RouteNone,
		"/create/extra": RouteAuthor,
	}
	for path, want := range cases {
		if got := RouteFor(path); got != want {
			t.Errorf("RouteFor(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestQuizIDFromPath(t *testing.T) {
	cases := map[string]string{
		"/play/12":    "12",
		"/play/abc/x": "abc",
		"/play/":      "",
		"/create":     "",
		"/quiz/12":    "",
	}
	for path, want := range cases {
		if got := QuizIDFromPath(path); got != want {
			t.Errorf("QuizIDFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
