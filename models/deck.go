package models

// Deck represents a named collection of cards owned by one client
type Deck struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `gorm:"not null;index" json:"client_id"`
	DeckName string `gorm:"not null;size:100" json:"deck_name"`
}

func (Deck) TableName() string { return "deck" }

// DeckSummary is what clients see of a deck.
type DeckSummary struct {
	ID       uint   `json:"id"`
	DeckName string `json:"deck_name"`
}

// DeckWithOwner is what admins see of a deck.
type DeckWithOwner struct {
	ID       uint          `json:"id"`
	Client   ClientContact `json:"client"`
	DeckName string        `json:"deck_name"`
}

type DeckCreate struct {
	Pseudo   string `json:"pseudo"`
	DeckName string `json:"deck_name" validate:"max=100"`
}

type DeckRename struct {
	ID       *uint  `json:"id"`
	DeckName string `json:"deck_name" validate:"max=100"`
}
