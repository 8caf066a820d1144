package http

import (
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/quiz"
	"github.com/mind-engage/globoquiz/internal/storage"
)

func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "index", "GloboQuiz", nil)
	}
}

type operatorOption struct {
	Value, Label string
	Selected     bool
}

type quizListData struct {
	Operators []operatorOption
	Questions int
	Filtered  bool
	Quizzes   []quiz.Summary
}

var operatorLabels = map[string]string{">=": "at least", "<=": "at most", "=": "exactly"}

// GET /play?operator=>=&questions=3
func QuizListHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := quiz.ListOpts{ViewerID: authmw.SubjectFromContext(r.Context())}
		data := quizListData{}

		if raw := r.URL.Query().Get("questions"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "questions must be a non-negative number", http.StatusBadRequest)
				return
			}
			op := r.URL.Query().Get("operator")
			if !slices.Contains(quiz.CountOperators, op) {
				http.Error(w, "unsupported operator", http.StatusBadRequest)
				return
			}
			opts.Operator, opts.Questions = op, n
			data.Filtered, data.Questions = true, n
		}
		for _, op := range quiz.CountOperators {
			data.Operators = append(data.Operators, operatorOption{Value: op, Label: operatorLabels[op], Selected: op == opts.Operator})
		}

		list, err := store.ListQuizzes(r.Context(), opts)
		if err != nil {
			log.Error("list quizzes", zap.Error(err))
			http.Error(w, "could not list quizzes", http.StatusInternalServerError)
			return
		}
		data.Quizzes = list
		render(w, r, http.StatusOK, "quizzes", "Play", data)
	}
}

type searchData struct {
	Term     string
	Searched bool
	Quizzes  []quiz.Summary
}

// GET /search?search=term
func SearchHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := searchData{}
		if r.URL.Query().Has("search") {
			data.Term = strings.TrimSpace(r.URL.Query().Get("search"))
			data.Searched = true
			list, err := store.SearchQuizzes(r.Context(), data.Term, authmw.SubjectFromContext(r.Context()))
			if err != nil {
				log.Error("search quizzes", zap.String("term", data.Term), zap.Error(err))
				http.Error(w, "search failed", http.StatusInternalServerError)
				return
			}
			data.Quizzes = list
		}
		render(w, r, http.StatusOK, "search", "Search", data)
	}
}

type flagEntry struct{ Name, Title string }

// GET /flags
func FlagsPageHandler(flags storage.BlobStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := flags.List()
		if err != nil {
			log.Error("list flags", zap.Error(err))
			http.Error(w, "could not list flags", http.StatusInternalServerError)
			return
		}
		entries := make([]flagEntry, 0, len(names))
		for _, n := range names {
			entries = append(entries, flagEntry{Name: n, Title: strings.TrimSuffix(n, filepath.Ext(n))})
		}
		render(w, r, http.StatusOK, "flags", "Flags", entries)
	}
}
