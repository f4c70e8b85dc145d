package storage

import (
	"context"

	"github.com/andrewpaige1/revision-api/models"
)

func (s *Store) FindDeck(ctx context.Context, id uint) (*models.Deck, error) {
	var deck models.Deck
	if err := s.db.WithContext(ctx).First(&deck, id).Error; err != nil {
		return nil, err
	}
	return &deck, nil
}

func (s *Store) ListDecksOfClient(ctx context.Context, clientID uint) ([]models.Deck, error) {
	decks := []models.Deck{}
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

func (s *Store) CreateDeck(ctx context.Context, deck *models.Deck) error {
	return s.db.WithContext(ctx).Create(deck).Error
}

func (s *Store) RenameDeck(ctx context.Context, id uint, name string) error {
	return s.db.WithContext(ctx).Model(&models.Deck{}).Where("id = ?", id).Update("deck_name", name).Error
}

// DeleteDeckCascade removes a deck with its cards and session. Call it inside
// Transaction.
func (s *Store) DeleteDeckCascade(ctx context.Context, id uint) error {
	if err := s.deleteDeckChildren(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Deck{}).Error
}

func (s *Store) deleteDeckChildren(ctx context.Context, deckID uint) error {
	if err := s.db.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&models.Card{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&models.Session{}).Error
}
