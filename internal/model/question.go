package model

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionExplanation QuestionType = "explanation"
)

// Question is one exam item. Questions are static or generated, never mutated.
// swagger:model Question
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
}
