package player

import "strings"

type Route int

const (
	RouteNone Route = iota
	RoutePlayer
	RouteAuthor
)

// RouteFor picks the flow for a page path: /play/{id} plays a quiz and
// /create opens the authoring form.
func RouteFor(path string) Route {
	switch {
	case strings.HasPrefix(path, "/play/"):
		return RoutePlayer
	case strings.HasPrefix(path, "/create"):
		return RouteAuthor
	default:
		return RouteNone
	}
}

// QuizIDFromPath returns the literal segment after /play/, or "" when the
// path is not a player path.
func QuizIDFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/play/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}
