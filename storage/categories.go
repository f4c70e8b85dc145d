package storage

import (
	"context"
	"sort"

	"github.com/andrewpaige1/revision-api/models"
)

func (s *Store) FindCategory(ctx context.Context, id uint) (*models.RevisionCategory, error) {
	var category models.RevisionCategory
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.RevisionCategory, error) {
	categories := []models.RevisionCategory{}
	if err := s.db.WithContext(ctx).
		Order("difficulty_order ASC").
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.RevisionCategory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.RevisionCategory) error {
	return s.db.WithContext(ctx).Create(category).Error
}

// UpdateCategory applies only the columns present in fields.
func (s *Store) UpdateCategory(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.RevisionCategory{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCategoryReassigning moves the category's cards to the default
// category, then deletes it. Call it inside Transaction.
func (s *Store) DeleteCategoryReassigning(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Model(&models.Card{}).
		Where("category_id = ?", id).
		Update("category_id", models.DefaultCategoryID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.RevisionCategory{}).Error
}

// ReorderCategories rewrites difficulty_order as 0..N-1. The category with id
// preferID, if any, is placed first among categories sharing its order.
func (s *Store) ReorderCategories(ctx context.Context, preferID uint) error {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}

	for rank, category := range RankCategories(categories, preferID) {
		if category.DifficultyOrder == rank {
			continue
		}
		if err := s.db.WithContext(ctx).Model(&models.RevisionCategory{}).
			Where("id = ?", category.ID).
			Update("difficulty_order", rank).Error; err != nil {
			return err
		}
	}
	return nil
}

// RankCategories sorts categories by difficulty_order, then preferID first on
// ties, then id. It returns a new slice.
func RankCategories(categories []models.RevisionCategory, preferID uint) []models.RevisionCategory {
	ranked := make([]models.RevisionCategory, len(categories))
	copy(ranked, categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.DifficultyOrder != b.DifficultyOrder {
			return a.DifficultyOrder < b.DifficultyOrder
		}
		if (a.ID == preferID) != (b.ID == preferID) {
			return a.ID == preferID
		}
		return a.ID < b.ID
	})
	return ranked
}
