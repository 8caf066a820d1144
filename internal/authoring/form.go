// Package authoring models the quiz creation form. Each question is a
// numbered block; new blocks are cloned from the first one.
package authoring

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mind-engage/globoquiz/internal/quiz"
)

var ErrNoTemplate = errors.New("no question block to use as a template")

// Block is the editable form section for one question. Number is its 1-based
// position and drives every field name and label.
type Block struct {
	Number  int
	Prompt  string
	Flag    string
	Options [4]string
	Answer  int // 1-based correct option, 0 when no radio is checked
}

// Name returns the form field name for this block, e.g. question-3-prompt.
func (b Block) Name(field string) string {
	return "question-" + strconv.Itoa(b.Number) + "-" + field
}

// OptionName returns the field name of option n (1-4).
func (b Block) OptionName(n int) string {
	return b.Name("option-" + strconv.Itoa(n))
}

func (b Block) Label() string {
	return "Question #" + strconv.Itoa(b.Number)
}

// cleared returns a copy with every input emptied, the way a fresh block looks.
func (b Block) cleared() Block {
	return Block{Number: b.Number}
}

type Form struct {
	Title  string
	Public bool
	Flags  []string // choices for each block's flag select
	Blocks []Block
}

// NewForm returns a form with the single template block. Option 1 starts as
// the correct answer.
func NewForm(flags []string) *Form {
	return &Form{
		Public: true,
		Flags:  flags,
		Blocks: []Block{{Number: 1, Answer: 1}},
	}
}

// AddQuestion clones the first block, clears its inputs, renumbers it to
// len(Blocks)+1 and places it after the last block.
func (f *Form) AddQuestion() error {
	if len(f.Blocks) == 0 {
		return ErrNoTemplate
	}
	b := f.Blocks[0].cleared()
	b.Number = len(f.Blocks) + 1
	f.Blocks = append(f.Blocks, b)
	return nil
}

// ParseForm reads a submitted form. Blocks are read from question-1 upward
// until a block without a prompt field is found.
func ParseForm(v url.Values, flags []string) (*Form, error) {
	f := &Form{
		Title:  strings.TrimSpace(v.Get("quiz-title")),
		Public: v.Get("quiz-public") != "",
		Flags:  flags,
	}
	for n := 1; ; n++ {
		b := Block{Number: n}
		if !v.Has(b.Name("prompt")) {
			break
		}
		b.Prompt = strings.TrimSpace(v.Get(b.Name("prompt")))
		b.Flag = v.Get(b.Name("flag"))
		for i := range b.Options {
			b.Options[i] = strings.TrimSpace(v.Get(b.OptionName(i + 1)))
		}
		if a := v.Get(b.Name("answer")); a != "" {
			ans, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("%s: answer %q is not a number", b.Label(), a)
			}
			b.Answer = ans
		}
		f.Blocks = append(f.Blocks, b)
	}
	return f, nil
}

// Quiz converts the form into a validated quiz.
func (f *Form) Quiz() (quiz.Quiz, error) {
	q := quiz.Quiz{Title: f.Title, Public: f.Public, Questions: make([]quiz.Question, 0, len(f.Blocks))}
	for _, b := range f.Blocks {
		q.Questions = append(q.Questions, quiz.Question{
			Prompt:        b.Prompt,
			ImagePath:     b.Flag,
			Option1:       b.Options[0],
			Option2:       b.Options[1],
			Option3:       b.Options[2],
			Option4:       b.Options[3],
			CorrectOption: b.Answer,
		})
	}
	if len(q.Questions) == 0 {
		return quiz.Quiz{}, quiz.ErrEmptyQuiz
	}
	if err := q.Validate(); err != nil {
		return quiz.Quiz{}, err
	}
	return q, nil
}
