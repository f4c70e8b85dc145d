package storage

import (
	"context"

	"github.com/andrewpaige1/revision-api/models"
)

func (s *Store) FindCard(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *Store) ListCardsOfDeck(ctx context.Context, deckID uint) ([]models.Card, error) {
	cards := []models.Card{}
	if err := s.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("id ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Store) CreateCard(ctx context.Context, card *models.Card) error {
	return s.db.WithContext(ctx).Create(card).Error
}

// UpdateCard applies only the columns present in fields.
func (s *Store) UpdateCard(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.Card{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) DeleteCard(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Card{}).Error
}
