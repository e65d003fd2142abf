package model

// DailyLog records study hours for one user on one day. One row per
// (user, date); repeated submissions replace the hours value.
// swagger:model DailyLog
type DailyLog struct {
	UUIDBase
	UserID string  `gorm:"size:36;index:idx_log_user_date,unique;not null" json:"userId"`
	Date   string  `gorm:"size:10;index:idx_log_user_date,unique;not null" json:"date"` // "YYYY-MM-DD"
	Hours  float64 `json:"hours"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
