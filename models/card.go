package models

// Card represents a front/back flashcard
type Card struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	DeckID     uint    `gorm:"not null;index" json:"deck_id"`
	CategoryID uint    `gorm:"not null;index" json:"category_id"`
	FrontCard  string  `gorm:"not null" json:"front_card"`
	BackCard   *string `json:"back_card"`
}

func (Card) TableName() string { return "card" }

// CardInDeck is the listing shape of a card, without its deck.
type CardInDeck struct {
	ID         uint    `json:"id"`
	CategoryID uint    `json:"category_id"`
	FrontCard  string  `json:"front_card"`
	BackCard   *string `json:"back_card"`
}

// CardDetail embeds the resolved deck under the deck_id key.
type CardDetail struct {
	ID         uint    `json:"id"`
	DeckID     *Deck   `json:"deck_id"`
	CategoryID uint    `json:"category_id"`
	FrontCard  string  `json:"front_card"`
	BackCard   *string `json:"back_card"`
}

type CardCreate struct {
	DeckID     *uint   `json:"deck_id"`
	CategoryID *uint   `json:"category_id"`
	FrontCard  *string `json:"front_card" validate:"omitempty,max=249"`
	BackCard   *string `json:"back_card" validate:"omitempty,max=1000"`
}

// CardUpdate carries the fields of a PATCH; nil fields are left untouched.
type CardUpdate struct {
	ID         *uint   `json:"id"`
	CategoryID *uint   `json:"category_id"`
	FrontCard  *string `json:"front_card" validate:"omitempty,max=249"`
	BackCard   *string `json:"back_card" validate:"omitempty,max=1000"`
}

func (u CardUpdate) Empty() bool {
	return u.CategoryID == nil && u.FrontCard == nil && u.BackCard == nil
}
