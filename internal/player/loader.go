package player

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mind-engage/globoquiz/internal/quiz"
)

// LoadError is a non-2xx answer from the quiz endpoint. Its message is the
// response body as sent by the server, meant to be shown to the player as-is.
type LoadError struct {
	Status int
	Body   string
}

func (e *LoadError) Error() string { return e.Body }

// Loader fetches quiz documents from a GloboQuiz server. Each Load is a single
// attempt with no retry and no caching.
type Loader struct {
	client *resty.Client
}

func NewLoader(baseURL string) *Loader {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &Loader{client: c}
}

// Load reads /quiz/{id}. Cookies are forwarded so private quizzes resolve for
// their owner.
func (l *Loader) Load(ctx context.Context, id string, cookies ...*http.Cookie) (quiz.Quiz, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetPathParam("id", id).
		Get("/quiz/{id}")
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("fetch quiz %s: %w", id, err)
	}
	if !resp.IsSuccess() {
		return quiz.Quiz{}, &LoadError{Status: resp.StatusCode(), Body: resp.String()}
	}

	var q quiz.Quiz
	if err := json.Unmarshal(resp.Body(), &q); err != nil {
		return quiz.Quiz{}, fmt.Errorf("decode quiz %s: %w", id, err)
	}
	if err := q.Validate(); err != nil {
		return quiz.Quiz{}, fmt.Errorf("quiz %s: %w", id, err)
	}
	return q, nil
}
