package http

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/authoring"
	"github.com/mind-engage/globoquiz/internal/quiz"
	"github.com/mind-engage/globoquiz/internal/storage"
)

type createData struct {
	Error string
	Form  *authoring.Form
}

type messageData struct {
	Text, Link, LinkText string
}

type CreateHandlers struct {
	Store quiz.Store
	Flags storage.BlobStore
	Log   *zap.Logger
}

// GET /create
func (h CreateHandlers) Form() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := h.Flags.List()
		if err != nil {
			h.Log.Error("list flags", zap.Error(err))
			http.Error(w, "could not list flags", http.StatusInternalServerError)
			return
		}
		render(w, r, http.StatusOK, "create", "Create", createData{Form: authoring.NewForm(names)})
	}
}

// POST /create. action=add clones the first question block and re-renders;
// action=save validates and stores the quiz.
func (h CreateHandlers) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		names, err := h.Flags.List()
		if err != nil {
			h.Log.Error("list flags", zap.Error(err))
			http.Error(w, "could not list flags", http.StatusInternalServerError)
			return
		}
		form, err := authoring.ParseForm(r.PostForm, names)
		if err != nil {
			render(w, r, http.StatusBadRequest, "create", "Create", createData{Error: err.Error(), Form: authoring.NewForm(names)})
			return
		}

		if r.PostForm.Get("action") == "add" {
			if err := form.AddQuestion(); err != nil {
				// nothing to clone from, start over with a fresh template block
				form = authoring.NewForm(names)
			}
			render(w, r, http.StatusOK, "create", "Create", createData{Form: form})
			return
		}

		q, err := form.Quiz()
		if err != nil {
			msg := err.Error()
			if errors.Is(err, quiz.ErrEmptyQuiz) {
				msg = "Add at least one question before creating the quiz."
			}
			if len(form.Blocks) == 0 {
				form = authoring.NewForm(names)
			}
			render(w, r, http.StatusBadRequest, "create", "Create", createData{Error: msg, Form: form})
			return
		}

		owner := authmw.SubjectFromContext(r.Context())
		id, err := h.Store.CreateQuiz(r.Context(), owner, q)
		if err != nil {
			h.Log.Error("create quiz", zap.String("owner", owner), zap.Error(err))
			http.Error(w, "could not save quiz", http.StatusInternalServerError)
			return
		}
		h.Log.Info("quiz created", zap.Int64("quiz_id", id), zap.Int("questions", len(q.Questions)))
		render(w, r, http.StatusCreated, "message", "Create", messageData{
			Text:     "Your quiz has been created.",
			Link:     fmt.Sprintf("/play/%d", id),
			LinkText: "Play it now",
		})
	}
}
