package services

import (
	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/models"
	"github.com/diewo77/portfolio-app/internal/store"
)

// GalleryService orchestrates gallery mutations: field rules first, then
// the store. The authentication gate sits in front of it at the router, so
// every call here runs on behalf of a signed-in user.
type GalleryService struct {
	items *store.GalleryStore
}

func NewGalleryService(items *store.GalleryStore) *GalleryService {
	return &GalleryService{items: items}
}

// Create validates the form and inserts the item. The error is either
// forms.Violations, store.ErrDuplicateHeader, or a storage failure.
func (s *GalleryService) Create(f forms.GalleryForm) (*models.GalleryItem, error) {
	if v := forms.Check(f); !v.Empty() {
		return nil, v
	}
	return s.items.Create(f.Header, f.Paragraph, f.Image, f.Category)
}

// Update validates the form and replaces all four fields of the item.
func (s *GalleryService) Update(id uint, f forms.GalleryForm) error {
	if v := forms.Check(f); !v.Empty() {
		return v
	}
	return s.items.Update(id, f.Header, f.Paragraph, f.Image, f.Category)
}

// Delete removes the item; store.ErrNotFound passes through untouched.
func (s *GalleryService) Delete(id uint) error {
	return s.items.Delete(id)
}
