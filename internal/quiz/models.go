package quiz

// Question is one prompt with exactly four options. CorrectOption is 1-based.
type Question struct {
	Prompt        string `json:"prompt" validate:"required"`
	ImagePath     string `json:"image_path"`
	Option1       string `json:"option_1" validate:"required"`
	Option2       string `json:"option_2" validate:"required"`
	Option3       string `json:"option_3" validate:"required"`
	Option4       string `json:"option_4" validate:"required"`
	CorrectOption int    `json:"correct_option" validate:"min=1,max=4"`
}

// Options returns the four option labels in display order.
func (q Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

type Quiz struct {
	Title     string     `json:"title" validate:"required"`
	Public    bool       `json:"public"`
	Questions []Question `json:"questions" validate:"dive"`
}

// Summary is a row in the quiz index and search results.
type Summary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Public        bool   `json:"public"`
	QuestionCount int    `json:"question_count"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
