package models

// DefaultCategoryID is the "Not categorized" category. It is never updated or
// deleted and receives the cards of deleted categories.
const DefaultCategoryID uint = 1

// RevisionCategory is a difficulty tier. DifficultyOrder is kept dense:
// 0..N-1 across all categories.
type RevisionCategory struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	CategoryName    string  `gorm:"not null" json:"category_name"`
	DifficultyOrder int     `gorm:"not null" json:"difficulty_order"`
	Description     *string `json:"description"`
}

func (RevisionCategory) TableName() string { return "revision_category" }

type CategoryCreate struct {
	CategoryName    *string `json:"category_name"`
	DifficultyOrder *int    `json:"difficulty_order"`
	Description     *string `json:"description"`
}

// CategoryUpdate carries the fields of a PATCH; nil fields are left untouched.
type CategoryUpdate struct {
	CategoryID      *uint   `json:"category_id"`
	CategoryName    *string `json:"category_name"`
	DifficultyOrder *int    `json:"difficulty_order"`
	Description     *string `json:"description"`
}
