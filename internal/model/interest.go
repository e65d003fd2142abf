package model

// Interest is one tag in the shared, append-only vocabulary used only for
// autocomplete suggestions. Tags are never deleted or renamed.
// swagger:model Interest
type Interest struct {
	UUIDBase
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (Interest) TableName() string {
	return "interests"
}
