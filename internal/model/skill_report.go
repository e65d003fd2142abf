package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type RoadmapPhase struct {
	Phase    string   `json:"phase"`
	Topics   []string `json:"topics"`
	Duration string   `json:"duration"`
}

type PhaseStrategy struct {
	Phase          string `json:"phase"`
	Strategy       string `json:"strategy"`
	TimeAllocation string `json:"timeAllocation"`
}

type PhaseList []RoadmapPhase

func (l PhaseList) Value() (driver.Value, error) {
	if l == nil {
		l = PhaseList{}
	}
	return json.Marshal(l)
}

func (l *PhaseList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (PhaseList) GormDataType() string { return "json" }

type StrategyList []PhaseStrategy

func (l StrategyList) Value() (driver.Value, error) {
	if l == nil {
		l = StrategyList{}
	}
	return json.Marshal(l)
}

func (l *StrategyList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (StrategyList) GormDataType() string { return "json" }

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSON column type: %T", value)
	}
}

// SkillGapReport is the stored result of one skill-gap analysis. Immutable
// once created.
// swagger:model SkillGapReport
type SkillGapReport struct {
	UUIDBase
	UserID          string       `gorm:"size:36;index;not null" json:"userId"`
	TargetRole      string       `gorm:"size:100;not null" json:"targetRole"`
	CurrentSkills   StringList   `gorm:"type:json" json:"currentSkills"`
	PreparationTime string       `gorm:"size:50" json:"preparationTime"`
	RequiredSkills  StringList   `gorm:"type:json" json:"requiredSkills"`
	MissingSkills   StringList   `gorm:"type:json" json:"missingSkills"`
	Roadmap         PhaseList    `gorm:"type:json" json:"roadmap"`
	Strategies      StrategyList `gorm:"type:json" json:"strategies"`
}

func (SkillGapReport) TableName() string {
	return "skill_gap_reports"
}
