package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// QuestionOutcome records one answered question inside a finished attempt.
type QuestionOutcome struct {
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText,omitempty"`
	QuestionType  string `json:"questionType,omitempty"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

type OutcomeList []QuestionOutcome

func (l OutcomeList) Value() (driver.Value, error) {
	if l == nil {
		l = OutcomeList{}
	}
	return json.Marshal(l)
}

func (l *OutcomeList) Scan(value interface{}) error {
	if value == nil {
		*l = OutcomeList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for OutcomeList: %T", value)
	}
}

func (OutcomeList) GormDataType() string {
	return "json"
}

// ExamResult is a finished exam attempt. Immutable once created: there is no
// update path anywhere in the service.
// swagger:model ExamResult
type ExamResult struct {
	UUIDBase
	UserID         string      `gorm:"size:36;index;not null" json:"userId"`
	ExamType       string      `gorm:"size:100;not null" json:"examType"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"totalQuestions"`
	Accuracy       float64     `json:"accuracy"`
	TimeSpent      int         `json:"timeSpent"` // seconds
	AIUsagePercent int         `json:"aiUsagePercent"`
	WeakTopics     StringList  `gorm:"type:json" json:"weakTopics"`
	Results        OutcomeList `gorm:"type:json" json:"results"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}
