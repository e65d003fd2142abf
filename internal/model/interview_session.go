package model

// InterviewSession stores one simulated mock-interview feedback round.
// swagger:model InterviewSession
type InterviewSession struct {
	UUIDBase
	UserID          string     `gorm:"size:36;index;not null" json:"userId"`
	ConfidenceScore int        `json:"confidenceScore"`
	StressLevel     int        `json:"stressLevel"`
	ClarityScore    int        `json:"clarityScore"`
	Strengths       StringList `gorm:"type:json" json:"strengths"`
	Weaknesses      StringList `gorm:"type:json" json:"weaknesses"`
	Tips            StringList `gorm:"type:json" json:"tips"`
	RecordingURL    string     `gorm:"size:255" json:"recordingUrl,omitempty"`
	Duration        float64    `json:"duration,omitempty"` // seconds, probed from the recording
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
