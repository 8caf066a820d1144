package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrNotAnswered     = errors.New("select an option before moving on")
	ErrFinished        = errors.New("quiz already finished")
	ErrSessionMismatch = errors.New("session does not belong to this quiz")
)

// Session is the per-play progression state. Transitions return a new value;
// the receiver is never modified.
type Session struct {
	Index    int  `json:"index"`
	Score    int  `json:"score"`
	Total    int  `json:"total"`
	Answered bool `json:"answered"`
	Guess    int  `json:"guess,omitempty"` // 1-based, 0 while unanswered
	Finished bool `json:"finished"`
}

// Result is the terminal view of a finished session.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

func (r Result) String() string {
	return fmt.Sprintf("Your score: %d / %d", r.Score, r.Total)
}

// NewSession starts at the first question. A quiz without questions has no
// first state and is rejected.
func NewSession(q Quiz) (Session, error) {
	if len(q.Questions) == 0 {
		return Session{}, ErrEmptyQuiz
	}
	return Session{Total: len(q.Questions)}, nil
}

// Select records the first guess for the current question. Later calls on an
// answered question are no-ops, so the score moves at most once per question.
func (s Session) Select(q Quiz, option int) (Session, error) {
	if s.Finished {
		return s, ErrFinished
	}
	if option < 1 || option > 4 {
		return s, ErrInvalidOption
	}
	if s.Total != len(q.Questions) || s.Index < 0 || s.Index >= s.Total {
		return s, ErrSessionMismatch
	}
	if s.Answered {
		return s, nil
	}
	next := s
	next.Answered = true
	next.Guess = option
	if option == q.Questions[s.Index].CorrectOption {
		next.Score++
	}
	return next, nil
}

// Next moves to the following question, or to the results once the last
// question is answered.
func (s Session) Next() (Session, error) {
	if s.Finished {
		return s, ErrFinished
	}
	if !s.Answered {
		return s, ErrNotAnswered
	}
	next := s
	if s.Index >= s.Total-1 {
		next.Finished = true
		return next, nil
	}
	next.Index++
	next.Answered = false
	next.Guess = 0
	return next, nil
}

func (s Session) Result() Result {
	return Result{Score: s.Score, Total: s.Total}
}
