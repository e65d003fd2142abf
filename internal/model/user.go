package model

// swagger:model User
type User struct {
	UUIDBase
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Avatar   string `gorm:"size:255" json:"avatar"`
	LinkedIn string `gorm:"size:255" json:"linkedin"`
	LeetCode string `gorm:"size:255" json:"leetcode"`
	GitHub   string `gorm:"size:255" json:"github"`

	// Interests drive connection suggestions; Favorites is a directed set of
	// user ids ("A favorites B" does not imply the reverse). No referential
	// integrity is enforced: a deleted user leaves dangling ids that readers
	// filter out.
	Interests Interests  `gorm:"type:json" json:"interests"`
	Favorites StringList `gorm:"type:json" json:"favorites"`
}

// Interests is a StringList alias so interest semantics read at call sites.
type Interests = StringList

func (User) TableName() string {
	return "users"
}

// Public strips credentials before a profile leaves the service.
func (u User) Public() User {
	u.Password = ""
	return u
}
