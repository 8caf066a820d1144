package player

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mind-engage/globoquiz/internal/quiz"
)

func TestPlayCapitals(t *testing.T) {
	srv, _ := quizServer(t, http.StatusOK, capitalsJSON)
	var out bytes.Buffer
	r, err := Play(context.Background(), NewLoader(srv.URL), "7", strings.NewReader("1\n\n"), &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if r.Score != 1 || r.Total != 1 {
		t.Fatalf("result = %+v", r)
	}
	for _, want := range []string{"Quiz: Capitals (1/1)", "Flag: /flag?name=france.svg", "1) Paris", "Correct!", "Show Results", "Your score: 1 / 1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunRetriesBadInputAndKeepsFirstGuess(t *testing.T) {
	q := quiz.Quiz{Title: "Capitals", Questions: []quiz.Question{
		{Prompt: "Capital of France?", Option1: "Paris", Option2: "Lyon", Option3: "Nice", Option4: "Metz", CorrectOption: 1},
		{Prompt: "Capital of Spain?", Option1: "Bilbao", Option2: "Madrid", Option3: "Seville", Option4: "Valencia", CorrectOption: 2},
	}}
	in := strings.NewReader("x\n9\n3\n\n2\n\n")
	var out bytes.Buffer
	r, err := Run(q, in, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Score != 1 || r.Total != 2 {
		t.Fatalf("result = %+v", r)
	}
	if got := strings.Count(out.String(), "Please enter a number from 1 to 4."); got != 2 {
		t.Fatalf("expected 2 retries, got %d", got)
	}
	if !strings.Contains(out.String(), "Wrong, the answer was Paris.") || !strings.Contains(out.String(), "[private]") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	q := quiz.Quiz{Title: "Capitals", Public: true, Questions: []quiz.Question{
		{Prompt: "Capital of France?", Option1: "Paris", Option2: "Lyon", Option3: "Nice", Option4: "Metz", CorrectOption: 1},
	}}
	if _, err := Run(q, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestRunEmptyQuiz(t *testing.T) {
	_, err := Run(quiz.Quiz{Title: "Nothing", Public: true}, strings.NewReader(""), &bytes.Buffer{})
	if err != quiz.ErrEmptyQuiz {
		t.Fatalf("err = %v", err)
	}
}
