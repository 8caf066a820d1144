package authoring

import (
	"errors"
	"net/url"
	"testing"

	"github.com/mind-engage/globoquiz/internal/quiz"
)

func TestAddQuestionClonesAndRenumbers(t *testing.T) {
	f := NewForm([]string{"france.svg"})
	f.Blocks[0] = Block{Number: 1, Prompt: "Capital of France?", Flag: "france.svg", Options: [4]string{"Paris", "Lyon", "Nice", "Metz"}, Answer: 1}
	if err := f.AddQuestion(); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.Blocks[1].Prompt = "filled in"
	if err := f.AddQuestion(); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(f.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(f.Blocks))
	}
	third := f.Blocks[2]
	if third.Name("prompt") != "question-3-prompt" || third.Label() != "Question #3" {
		t.Fatalf("third block identifiers: %q / %q", third.Name("prompt"), third.Label())
	}
	if third.OptionName(4) != "question-3-option-4" || third.Name("answer") != "question-3-answer" {
		t.Fatalf("third block option names: %q / %q", third.OptionName(4), third.Name("answer"))
	}
	if third.Prompt != "" || third.Flag != "" || third.Answer != 0 || third.Options != [4]string{} {
		t.Fatalf("clone not cleared: %+v", third)
	}
	if f.Blocks[0].Prompt != "Capital of France?" || f.Blocks[1].Prompt != "filled in" {
		t.Fatalf("existing blocks changed: %+v", f.Blocks[:2])
	}
}

func TestAddQuestionWithoutTemplate(t *testing.T) {
	f := &Form{}
	if err := f.AddQuestion(); !errors.Is(err, ErrNoTemplate) {
		t.Fatalf("err = %v, want ErrNoTemplate", err)
	}
}

func TestParseFormToQuiz(t *testing.T) {
	v := url.Values{
		"quiz-title":          {"Capitals"},
		"quiz-public":         {"true"},
		"question-1-prompt":   {"Capital of France?"},
		"question-1-flag":     {"france.svg"},
		"question-1-option-1": {"Paris"},
		"question-1-option-2": {"Lyon"},
		"question-1-option-3": {"Nice"},
		"question-1-option-4": {"Metz"},
		"question-1-answer":   {"1"},
		"question-2-prompt":   {"Capital of Spain?"},
		"question-2-option-1": {"Bilbao"},
		"question-2-option-2": {"Madrid"},
		"question-2-option-3": {"Seville"},
		"question-2-option-4": {"Valencia"},
		"question-2-answer":   {"2"},
		// gap: question-3 missing, so question-4 is never read
		"question-4-prompt": {"ignored"},
	}
	f, err := ParseForm(v, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(f.Blocks) != 2 || !f.Public {
		t.Fatalf("form = %+v", f)
	}
	q, err := f.Quiz()
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if q.Title != "Capitals" || q.Questions[1].Option2 != "Madrid" || q.Questions[1].CorrectOption != 2 || q.Questions[0].ImagePath != "france.svg" {
		t.Fatalf("quiz = %+v", q)
	}
}

func TestParseFormErrors(t *testing.T) {
	if _, err := ParseForm(url.Values{"question-1-prompt": {"x"}, "question-1-answer": {"one"}}, nil); err == nil {
		t.Fatalf("expected error for non-numeric answer")
	}

	f, err := ParseForm(url.Values{"quiz-title": {"Empty"}}, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Public {
		t.Fatalf("unchecked public box must be false")
	}
	if _, err := f.Quiz(); !errors.Is(err, quiz.ErrEmptyQuiz) {
		t.Fatalf("err = %v, want ErrEmptyQuiz", err)
	}

	f, _ = ParseForm(url.Values{"quiz-title": {"T"}, "question-1-prompt": {"p"}, "question-1-answer": {"1"}}, nil)
	if _, err := f.Quiz(); !errors.Is(err, quiz.ErrInvalidQuiz) {
		t.Fatalf("err = %v, want ErrInvalidQuiz", err)
	}
}
