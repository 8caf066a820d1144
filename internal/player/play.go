package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/mind-engage/globoquiz/internal/quiz"
)

// FlagURL is where a question's image is served from.
func FlagURL(imagePath string) string {
	return "/flag?name=" + url.QueryEscape(imagePath)
}

// Play runs a quiz in a terminal: one question at a time, a single guess per
// question, then the score.
func Play(ctx context.Context, l *Loader, id string, in io.Reader, out io.Writer) (quiz.Result, error) {
	q, err := l.Load(ctx, id)
	if err != nil {
		return quiz.Result{}, err
	}
	return Run(q, in, out)
}

// Run drives the progression for an already loaded quiz.
func Run(q quiz.Quiz, in io.Reader, out io.Writer) (quiz.Result, error) {
	s, err := quiz.NewSession(q)
	if err != nil {
		return quiz.Result{}, err
	}
	sc := bufio.NewScanner(in)
	for !s.Finished {
		sec := quiz.Render(q, s).Sections[s.Index]
		fmt.Fprintf(out, "\nQuiz: %s (%d/%d)\n", quiz.DisplayTitle(q), sec.Number, s.Total)
		if sec.ImagePath != "" {
			fmt.Fprintf(out, "Flag: %s\n", FlagURL(sec.ImagePath))
		}
		fmt.Fprintln(out, sec.Prompt)
		for _, o := range sec.Options {
			fmt.Fprintf(out, "  %d) %s\n", o.Number, o.Label)
		}

		for !s.Answered {
			fmt.Fprint(out, "Your answer (1-4): ")
			line, err := readLine(sc)
			if err != nil {
				return quiz.Result{}, err
			}
			n, err := strconv.Atoi(line)
			if err == nil {
				s, err = s.Select(q, n)
			}
			if err != nil {
				fmt.Fprintln(out, "Please enter a number from 1 to 4.")
			}
		}

		correct := q.Questions[s.Index].CorrectOption
		if s.Guess == correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong, the answer was %s.\n", sec.Options[correct-1].Label)
		}

		fmt.Fprintf(out, "[Enter] %s ", sec.Next.Label)
		if _, err := readLine(sc); err != nil {
			return quiz.Result{}, err
		}
		if s, err = s.Next(); err != nil {
			return quiz.Result{}, err
		}
	}
	r := s.Result()
	fmt.Fprintf(out, "\n%s\n", r)
	return r, nil
}

func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input ended before the quiz was finished")
	}
	return strings.TrimSpace(sc.Text()), nil
}
