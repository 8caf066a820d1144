package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/player"
	"github.com/mind-engage/globoquiz/internal/quiz"
)

type playerData struct {
	Message string
	View    quiz.View
	State   string
}

// PlayHandlers serves the quiz player. The quiz is fetched once from
// /quiz/{id} when play starts and stored with the progress in a play row.
// The page only carries a signed reference to that row, and every POST is
// one state machine transition applied to the stored session.
type PlayHandlers struct {
	Loader *player.Loader
	Plays  quiz.PlayStore
	Auth   *authmw.AuthService
	Log    *zap.Logger
}

// GET /play/{quizID}
func (h PlayHandlers) Start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := h.Loader.Load(r.Context(), id, r.Cookies()...)
		if err != nil {
			var le *player.LoadError
			if errors.As(err, &le) {
				render(w, r, le.Status, "player", "Quiz", playerData{Message: le.Error()})
				return
			}
			h.Log.Warn("load quiz", zap.String("quiz_id", id), zap.Error(err))
			render(w, r, http.StatusBadGateway, "player", "Quiz", playerData{Message: err.Error()})
			return
		}
		if len(q.Questions) == 0 {
			render(w, r, http.StatusOK, "player", "Quiz", playerData{Message: "This quiz has no questions."})
			return
		}

		viewer := authmw.SubjectFromContext(r.Context())
		p, err := h.Plays.StartPlay(r.Context(), id, viewer, q)
		if err != nil {
			h.Log.Error("start play", zap.String("quiz_id", id), zap.Error(err))
			http.Error(w, "could not start quiz", http.StatusInternalServerError)
			return
		}
		tok, err := h.Auth.SignPlayState(p.ID, id, viewer)
		if err != nil {
			h.Log.Error("sign play state", zap.Error(err))
			http.Error(w, "could not start quiz", http.StatusInternalServerError)
			return
		}
		h.show(w, r, tok, p.Quiz, p.Session, http.StatusOK)
	}
}

// POST /play/{quizID} with question=N and either option=1..4 or action=next
func (h PlayHandlers) Step() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		viewer := authmw.SubjectFromContext(r.Context())
		tok := r.PostForm.Get("state")
		playID, err := h.Auth.ParsePlayState(tok, id, viewer)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, err := h.Plays.GetPlay(r.Context(), playID, viewer)
		switch {
		case errors.Is(err, quiz.ErrNotFound):
			http.Error(w, authmw.ErrBadPlayState.Error(), http.StatusBadRequest)
			return
		case err != nil:
			h.Log.Error("get play", zap.String("play_id", playID), zap.Error(err))
			http.Error(w, "could not load progress", http.StatusInternalServerError)
			return
		}

		cur := p.Session
		// a form from an earlier page (back button, second tab) is answered
		// with the current state instead of being applied to it
		if cur.Finished || r.PostForm.Get("question") != strconv.Itoa(cur.Index+1) {
			h.show(w, r, tok, p.Quiz, cur, http.StatusConflict)
			return
		}

		var next quiz.Session
		switch {
		case r.PostForm.Get("action") == "next":
			next, err = cur.Next()
		case r.PostForm.Has("option"):
			var n int
			n, err = strconv.Atoi(r.PostForm.Get("option"))
			if err != nil {
				err = quiz.ErrInvalidOption
				break
			}
			next, err = cur.Select(p.Quiz, n)
		default:
			err = errors.New("missing option or action")
		}
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, quiz.ErrNotAnswered) {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)
			return
		}

		if next != cur {
			err := h.Plays.AdvancePlay(r.Context(), playID, cur, next)
			if errors.Is(err, quiz.ErrStalePlay) {
				p, err = h.Plays.GetPlay(r.Context(), playID, viewer)
				if err == nil {
					h.show(w, r, tok, p.Quiz, p.Session, http.StatusConflict)
					return
				}
			}
			if err != nil {
				h.Log.Error("advance play", zap.String("play_id", playID), zap.Error(err))
				http.Error(w, "could not save progress", http.StatusInternalServerError)
				return
			}
		}
		h.show(w, r, tok, p.Quiz, next, http.StatusOK)
	}
}

func (h PlayHandlers) show(w http.ResponseWriter, r *http.Request, tok string, q quiz.Quiz, s quiz.Session, status int) {
	data := playerData{View: quiz.Render(q, s)}
	if !s.Finished {
		data.State = tok
	}
	render(w, r, status, "player", "Quiz", data)
}
