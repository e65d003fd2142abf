package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type UUIDBase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}

// StringList stores a JSON-encoded string slice in a single column. Firestore
// kept these as array fields; a JSON column keeps reads/writes one-shot.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

func (StringList) GormDataType() string {
	return "json"
}

// Contains reports whether v is present with an exact, case-sensitive match.
func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// IntList stores a JSON-encoded int slice (e.g. weekday indices 0-6).
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	return json.Marshal(l)
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = IntList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for IntList: %T", value)
	}
}

func (IntList) GormDataType() string {
	return "json"
}
