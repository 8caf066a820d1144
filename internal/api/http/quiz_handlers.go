package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/quiz"
)

// GET /quiz/{quizID}
// Missing quizzes and private quizzes of other users get the same plain-text
// 404 so their existence is not revealed.
func GetQuizHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "quizID")
		notFound := fmt.Sprintf("No quiz with ID %s, or you are not allowed to access this quiz.", raw)

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, notFound, http.StatusNotFound)
			return
		}
		q, err := store.GetQuiz(r.Context(), id, authmw.SubjectFromContext(r.Context()))
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				http.Error(w, notFound, http.StatusNotFound)
				return
			}
			log.Error("get quiz", zap.Int64("quiz_id", id), zap.Error(err))
			http.Error(w, "could not load quiz", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(q)
	}
}
