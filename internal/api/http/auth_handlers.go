package http

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/quiz"
)

type AuthHandlers struct {
	Users quiz.UserStore
	Auth  *authmw.AuthService
	Log   *zap.Logger
}

func (h AuthHandlers) LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "login", "Login", "")
	}
}

func (h AuthHandlers) RegisterPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "register", "Register", "")
	}
}

// POST /login
func (h AuthHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		u, err := h.Users.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
		switch {
		case errors.Is(err, quiz.ErrBadCredentials):
			render(w, r, http.StatusForbidden, "login", "Login",
				"The username and/or password are incorrect. Please try again.")
			return
		case err != nil:
			h.Log.Error("authenticate", zap.Error(err))
			http.Error(w, "login failed", http.StatusInternalServerError)
			return
		}
		h.startSession(w, r, u)
	}
}

// POST /register
func (h AuthHandlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		pw := r.PostForm.Get("password")
		if pw != r.PostForm.Get("password-again") {
			render(w, r, http.StatusForbidden, "register", "Register", "The passwords did not match.")
			return
		}
		u, err := h.Users.CreateUser(r.Context(), r.PostForm.Get("username"), pw)
		switch {
		case errors.Is(err, quiz.ErrUsernameTaken):
			render(w, r, http.StatusForbidden, "register", "Register", "That username has already been registered.")
			return
		case errors.Is(err, quiz.ErrMissingCredentials):
			render(w, r, http.StatusBadRequest, "register", "Register", "Please enter a username and a password.")
			return
		case err != nil:
			h.Log.Error("create user", zap.Error(err))
			render(w, r, http.StatusInternalServerError, "register", "Register", "Registration failed. Please try again.")
			return
		}
		h.Log.Info("user registered", zap.String("user_id", u.ID))
		h.startSession(w, r, u)
	}
}

// POST /logout
func (h AuthHandlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authmw.EndSession(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (h AuthHandlers) startSession(w http.ResponseWriter, r *http.Request, u quiz.User) {
	if err := h.Auth.StartSession(w, u.ID, u.Username); err != nil {
		h.Log.Error("start session", zap.Error(err))
		http.Error(w, "could not start session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
