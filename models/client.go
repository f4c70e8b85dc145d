package models

// Client represents an account that owns decks
type Client struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Pseudo   string `gorm:"not null;uniqueIndex;size:15" json:"pseudo"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	IsAdmin  bool   `gorm:"not null" json:"is_admin"`
}

func (Client) TableName() string { return "client" }

// ClientContact is the owner projection embedded in a deck for admins
type ClientContact struct {
	Pseudo  string `json:"pseudo"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type ClientRegistration struct {
	Pseudo   string  `json:"pseudo" validate:"pseudo"`
	Password *string `json:"password"`
	Email    string  `json:"email" validate:"basicemail"`
	IsAdmin  *bool   `json:"is_admin"`
}

// ClientUpdate carries the fields of a PATCH; nil fields are left untouched.
type ClientUpdate struct {
	ID       *uint   `json:"id"`
	Pseudo   *string `json:"pseudo" validate:"omitnil,pseudo"`
	Password *string `json:"password"`
	Email    *string `json:"email" validate:"omitnil,basicemail"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (u ClientUpdate) Empty() bool {
	return u.Pseudo == nil && u.Password == nil && u.Email == nil && u.IsAdmin == nil
}

type Credentials struct {
	Pseudo   string `json:"pseudo"`
	Password string `json:"password"`
}
