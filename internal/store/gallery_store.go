package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/portfolio-app/internal/models"
)

// GalleryStore owns the portfolio item collection.
type GalleryStore struct {
	db *gorm.DB
}

func NewGalleryStore(db *gorm.DB) *GalleryStore { return &GalleryStore{db: db} }

// ListOrdered returns a snapshot of all items ordered by id ascending.
func (s *GalleryStore) ListOrdered() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	return items, nil
}

// Get returns the item or ErrNotFound.
func (s *GalleryStore) Get(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gallery item: %w", err)
	}
	return &item, nil
}

// Create inserts a new item. Returns ErrDuplicateHeader when the header
// collides with an existing item; the unique index is the final arbiter
// under concurrent inserts.
func (s *GalleryStore) Create(header, paragraph, image, category string) (*models.GalleryItem, error) {
	item := models.GalleryItem{Header: header, Paragraph: paragraph, Image: image, Category: category}
	if err := s.db.Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateHeader
		}
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return &item, nil
}

// Update replaces all four fields of the item in place. ErrNotFound when
// the id is absent; ErrDuplicateHeader when the new header belongs to a
// different existing item.
func (s *GalleryStore) Update(id uint, header, paragraph, image, category string) error {
	var item models.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get gallery item for update: %w", err)
	}
	var clash int64
	if err := s.db.Model(&models.GalleryItem{}).
		Where("header = ? AND id <> ?", header, id).
		Limit(1).Count(&clash).Error; err != nil {
		return fmt.Errorf("check header uniqueness: %w", err)
	}
	if clash > 0 {
		return ErrDuplicateHeader
	}
	item.Header = header
	item.Paragraph = paragraph
	item.Image = image
	item.Category = category
	if err := s.db.Save(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHeader
		}
		return fmt.Errorf("update gallery item: %w", err)
	}
	return nil
}

// Delete removes the item; ErrNotFound when the id is absent. The caller
// decides whether to tolerate that.
func (s *GalleryStore) Delete(id uint) error {
	res := s.db.Delete(&models.GalleryItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete gallery item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
