package quiz

// View is what a renderer needs to draw the player for a given session. Once
// the session is finished, Sections is empty and Result is set.
type View struct {
	Title    string
	Sections []SectionView
	Result   *Result
}

type SectionView struct {
	Number    int
	Hidden    bool
	Prompt    string
	ImagePath string
	Options   []OptionView
	Next      NextView
}

type OptionView struct {
	Number   int
	Label    string
	Correct  bool
	Guess    bool
	Disabled bool
}

type NextView struct {
	Label    string
	Disabled bool
}

const (
	NextQuestionLabel = "Next Question"
	ShowResultsLabel  = "Show Results"
)

// Render builds one section per question. Only the current one is visible;
// sections before it keep their answered state and sections after it are
// untouched.
func Render(q Quiz, s Session) View {
	if s.Finished {
		r := s.Result()
		return View{Title: DisplayTitle(q), Result: &r}
	}
	v := View{Title: DisplayTitle(q), Sections: make([]SectionView, 0, len(q.Questions))}
	for i, question := range q.Questions {
		answered := i < s.Index || (i == s.Index && s.Answered)
		sec := SectionView{
			Number:    i + 1,
			Hidden:    i != s.Index,
			Prompt:    question.Prompt,
			ImagePath: question.ImagePath,
			Next: NextView{
				Label:    NextQuestionLabel,
				Disabled: !answered,
			},
		}
		if i == len(q.Questions)-1 {
			sec.Next.Label = ShowResultsLabel
		}
		for n, label := range question.Options() {
			sec.Options = append(sec.Options, OptionView{
				Number:   n + 1,
				Label:    label,
				Correct:  n+1 == question.CorrectOption,
				Guess:    i == s.Index && s.Guess == n+1,
				Disabled: answered,
			})
		}
		v.Sections = append(v.Sections, sec)
	}
	return v
}

// DisplayTitle marks private quizzes.
func DisplayTitle(q Quiz) string {
	if q.Public {
		return q.Title
	}
	return q.Title + " [private]"
}
