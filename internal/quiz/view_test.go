package quiz

import "testing"

func visible(v View) []int {
	var out []int
	for i, s := range v.Sections {
		if !s.Hidden {
			out = append(out, i)
		}
	}
	return out
}

func TestRenderShowsExactlyOneSection(t *testing.T) {
	q := threeQuestions()
	s, _ := NewSession(q)
	for i := range q.Questions {
		v := Render(q, s)
		got := visible(v)
		if len(got) != 1 || got[0] != i {
			t.Fatalf("step %d: visible sections %v", i, got)
		}
		s, _ = s.Select(q, 1)
		s, _ = s.Next()
	}
}

func TestRenderNextControl(t *testing.T) {
	q := threeQuestions()
	s, _ := NewSession(q)

	v := Render(q, s)
	sec := v.Sections[0]
	if !sec.Next.Disabled {
		t.Fatalf("next must start disabled")
	}
	for _, o := range sec.Options {
		if o.Disabled {
			t.Fatalf("option %d disabled before answering", o.Number)
		}
	}
	if sec.Next.Label != NextQuestionLabel || v.Sections[2].Next.Label != ShowResultsLabel {
		t.Fatalf("labels: %q / %q", sec.Next.Label, v.Sections[2].Next.Label)
	}

	s, _ = s.Select(q, 3)
	sec = Render(q, s).Sections[0]
	if sec.Next.Disabled {
		t.Fatalf("next must be enabled after a guess")
	}
	for _, o := range sec.Options {
		if !o.Disabled {
			t.Fatalf("option %d still enabled after guess", o.Number)
		}
		if o.Guess != (o.Number == 3) {
			t.Fatalf("option %d guess flag = %v", o.Number, o.Guess)
		}
		if o.Correct != (o.Number == 1) {
			t.Fatalf("option %d correct flag = %v", o.Number, o.Correct)
		}
	}
}

func TestRenderResultReplacesSections(t *testing.T) {
	q := capitals()
	s, _ := NewSession(q)
	s, _ = s.Select(q, 1)
	s, _ = s.Next()
	v := Render(q, s)
	if len(v.Sections) != 0 || v.Result == nil {
		t.Fatalf("expected result-only view, got %+v", v)
	}
	if v.Result.Score != 1 || v.Result.Total != 1 {
		t.Fatalf("result = %+v", v.Result)
	}
}

func TestDisplayTitleMarksPrivate(t *testing.T) {
	q := capitals()
	q.Public = false
	if got := DisplayTitle(q); got != "Capitals [private]" {
		t.Fatalf("title = %q", got)
	}
}
