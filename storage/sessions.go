package storage

import (
	"context"

	"github.com/andrewpaige1/revision-api/models"
)

func (s *Store) FindSession(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	sessions := []models.Session{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) CreateSession(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *Store) SetSessionCompleted(ctx context.Context, id uint, completed bool) error {
	return s.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Update("completed", completed).Error
}

func (s *Store) DeleteSession(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error
}
