package model

// StudyReminder is either a weekly recurrence (Days holds weekday indices,
// 0=Sunday) or a one-shot (Date set, Days empty). Exactly one of the two is
// populated; the service validates the exclusivity on write. Delivery is a
// client concern — missed reminders while the client is closed are lost.
// swagger:model StudyReminder
type StudyReminder struct {
	UUIDBase
	UserID  string  `gorm:"size:36;index;not null" json:"userId"`
	Title   string  `gorm:"size:200;not null" json:"title"`
	Time    string  `gorm:"size:5;not null" json:"time"` // "HH:MM"
	Days    IntList `gorm:"type:json" json:"days"`
	Date    string  `gorm:"size:10" json:"date,omitempty"` // "YYYY-MM-DD"
	Enabled bool    `gorm:"default:true" json:"enabled"`
}

func (StudyReminder) TableName() string {
	return "study_reminders"
}
