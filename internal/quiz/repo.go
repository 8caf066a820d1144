package quiz

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("quiz not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrMissingCredentials = errors.New("username and password required")
	ErrBadCredentials     = errors.New("incorrect username or password")
	ErrUnsupportedFilter  = errors.New("unsupported question count operator")
)

// CountOperators are the comparisons accepted by the quiz index filter.
var CountOperators = []string{">=", "<=", "="}

type ListOpts struct {
	ViewerID  string
	Operator  string // one of CountOperators; empty disables the filter
	Questions int
}

type Store interface {
	CreateQuiz(ctx context.Context, ownerID string, q Quiz) (int64, error)
	// GetQuiz returns the quiz if it is public or owned by viewerID.
	GetQuiz(ctx context.Context, id int64, viewerID string) (Quiz, error)
	ListQuizzes(ctx context.Context, opts ListOpts) ([]Summary, error)
	SearchQuizzes(ctx context.Context, term, viewerID string) ([]Summary, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, username, password string) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	UserByName(ctx context.Context, username string) (User, error)
}

// Play is one run through a quiz by one viewer. The quiz is the copy loaded
// when play started, so later edits do not shift an ongoing run.
type Play struct {
	ID       string
	QuizID   string
	ViewerID string
	Quiz     Quiz
	Session  Session
}

var ErrStalePlay = errors.New("quiz progress changed in another request")

type PlayStore interface {
	StartPlay(ctx context.Context, quizID, viewerID string, q Quiz) (Play, error)
	// GetPlay returns the play only to the viewer who started it.
	GetPlay(ctx context.Context, id, viewerID string) (Play, error)
	// AdvancePlay stores to if the play is still at from, else ErrStalePlay.
	AdvancePlay(ctx context.Context, id string, from, to Session) error
}
