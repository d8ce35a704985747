package quiz

// Option is one selectable answer of a question.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

type Question struct {
	ID            int      `json:"id" yaml:"id"`
	Prompt        string   `json:"prompt" yaml:"prompt"`
	Options       []Option `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation   string   `json:"explanation" yaml:"explanation"` // shown on incorrect/unanswered
}

// Quiz is immutable once loaded into a Catalog. ID is assigned at load
// time and is never read from the file itself.
type Quiz struct {
	ID        int        `json:"id" yaml:"-"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Title is the catalog listing entry served by GET /quiz-titles.
type Title struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Submission maps question id -> selected option value. A missing key
// means the question was left unanswered.
type Submission map[int]string

// Question returns the question with the given id.
func (q Quiz) Question(id int) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
