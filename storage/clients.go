package storage

import (
	"context"

	"github.com/andrewpaige1/revision-api/models"
)

func (s *Store) FindClientByPseudo(ctx context.Context, pseudo string) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).Where("pseudo = ?", pseudo).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *Store) FindClientByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindLoginCandidate looks up the account with this pseudo and admin flag.
func (s *Store) FindLoginCandidate(ctx context.Context, pseudo string, isAdmin bool) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).
		Where("is_admin = ? AND pseudo = ?", isAdmin, pseudo).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// PseudoOrEmailTaken reports whether any client other than exceptID already
// uses pseudo or email. Pass 0 to check against every client.
func (s *Store) PseudoOrEmailTaken(ctx context.Context, pseudo, email string, exceptID uint) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.Client{}).
		Where("pseudo = ? OR email = ?", pseudo, email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateClient(ctx context.Context, client *models.Client) error {
	return s.db.WithContext(ctx).Create(client).Error
}

// UpdateClient applies only the columns present in fields.
func (s *Store) UpdateClient(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteClientCascade removes a client's decks, with their cards and sessions,
// then the client. Call it inside Transaction.
func (s *Store) DeleteClientCascade(ctx context.Context, id uint) error {
	var deckIDs []uint
	if err := s.db.WithContext(ctx).Model(&models.Deck{}).
		Where("client_id = ?", id).
		Pluck("id", &deckIDs).Error; err != nil {
		return err
	}

	for _, deckID := range deckIDs {
		if err := s.deleteDeckChildren(ctx, deckID); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Where("client_id = ?", id).Delete(&models.Deck{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{}).Error
}
