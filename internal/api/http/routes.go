package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/logger"
	"github.com/mind-engage/globoquiz/internal/player"
	"github.com/mind-engage/globoquiz/internal/quiz"
	"github.com/mind-engage/globoquiz/internal/storage"
)

type Deps struct {
	Store       quiz.Store
	Users       quiz.UserStore
	Plays       quiz.PlayStore
	Flags       storage.BlobStore
	Auth        *authmw.AuthService
	Loader      *player.Loader
	Log         *zap.Logger
	CORSOrigins []string
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logger.Requests(d.Log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(authmw.SessionMiddleware(d.Auth))

	static := StaticHandler()
	r.Get("/main.css", static.ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	// Public: the quiz document endpoint and flag images. Anonymous callers
	// only see public quizzes.
	r.With(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})).Get("/quiz/{quizID}", GetQuizHandler(d.Store, d.Log))
	r.Get("/flag", FlagHandler(d.Flags))

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.RequireLogin)

		ah := AuthHandlers{Users: d.Users, Auth: d.Auth, Log: d.Log}
		pr.Get("/login", ah.LoginPage())
		pr.Post("/login", ah.Login())
		pr.Get("/register", ah.RegisterPage())
		pr.Post("/register", ah.Register())
		pr.Post("/logout", ah.Logout())

		pr.Get("/", IndexHandler())
		pr.Get("/play", QuizListHandler(d.Store, d.Log))
		pr.Get("/search", SearchHandler(d.Store, d.Log))
		pr.Get("/flags", FlagsPageHandler(d.Flags, d.Log))

		ph := PlayHandlers{Loader: d.Loader, Plays: d.Plays, Auth: d.Auth, Log: d.Log}
		pr.Get("/play/{quizID}", ph.Start())
		pr.Post("/play/{quizID}", ph.Step())

		ch := CreateHandlers{Store: d.Store, Flags: d.Flags, Log: d.Log}
		pr.Get("/create", ch.Form())
		pr.Post("/create", ch.Submit())
	})

	return r
}
