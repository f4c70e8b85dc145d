package models

// Session is the study progress of a deck. A deck has at most one.
type Session struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	Completed bool `gorm:"not null" json:"completed"`
	DeckID    uint `gorm:"not null;uniqueIndex" json:"deck_id"`
}

func (Session) TableName() string { return "session" }

type SessionCreate struct {
	DeckID    *uint `json:"deck_id"`
	Completed *bool `json:"completed"`
}

type SessionUpdate struct {
	ID        *uint `json:"id"`
	Completed *bool `json:"completed"`
}

// IDRequest is the body of every DELETE route.
type IDRequest struct {
	ID *uint `json:"id"`
}
