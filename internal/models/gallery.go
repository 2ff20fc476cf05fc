package models

import "time"

// GalleryItem is a displayable portfolio entry. Items are not scoped to a
// user: any authenticated session may edit or delete any item. The header
// unique index backs the application-level duplicate check.
type GalleryItem struct {
	ID        uint   `gorm:"primaryKey"`
	Header    string `gorm:"size:20;uniqueIndex;not null"`
	Paragraph string `gorm:"size:100;not null"`
	Image     string `gorm:"size:250"`
	Category  string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
