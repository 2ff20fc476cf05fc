package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/models"
	"github.com/diewo77/portfolio-app/internal/store"
)

func validGalleryForm() forms.GalleryForm {
	return forms.GalleryForm{
		Header:    "Sunset",
		Paragraph: "Golden hour over the harbour.",
		Image:     "/img/sunset.jpg",
		Category:  "photography",
	}
}

func TestGalleryServiceCreate(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	item, err := svc.Create(validGalleryForm())
	require.NoError(t, err)
	require.NotZero(t, item.ID)
	require.Equal(t, "Sunset", item.Header)
}

func TestGalleryServiceCreateRejectsInvalidForm(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGalleryService(store.NewGalleryStore(db))

	f := validGalleryForm()
	f.Header = "x" // below minimum
	f.Category = ""
	_, err := svc.Create(f)

	var v forms.Violations
	require.ErrorAs(t, err, &v)
	require.Contains(t, v, "Header")
	require.Contains(t, v, "Category")

	// Rejected before reaching the store.
	var count int64
	require.NoError(t, db.Model(&models.GalleryItem{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGalleryServiceCreateFieldBounds(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	f := validGalleryForm()
	f.Header = strings.Repeat("h", 21)
	f.Paragraph = strings.Repeat("p", 101)
	f.Image = strings.Repeat("i", 251)
	_, err := svc.Create(f)

	var v forms.Violations
	require.ErrorAs(t, err, &v)
	require.Contains(t, v, "Header")
	require.Contains(t, v, "Paragraph")
	require.Contains(t, v, "Image")
}

func TestGalleryServiceCreateImageOptional(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	f := validGalleryForm()
	f.Image = ""
	_, err := svc.Create(f)
	require.NoError(t, err)
}

func TestGalleryServiceCreateDuplicateHeader(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	_, err := svc.Create(validGalleryForm())
	require.NoError(t, err)
	_, err = svc.Create(validGalleryForm())
	require.ErrorIs(t, err, store.ErrDuplicateHeader)
}

func TestGalleryServiceUpdate(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	item, err := svc.Create(validGalleryForm())
	require.NoError(t, err)

	f := forms.GalleryForm{Header: "New", Paragraph: "New paragraph.", Image: "", Category: "drawing"}
	require.NoError(t, svc.Update(item.ID, f))

	err = svc.Update(999, f)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGalleryServiceUpdateRejectsInvalidForm(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	item, err := svc.Create(validGalleryForm())
	require.NoError(t, err)

	f := validGalleryForm()
	f.Paragraph = "x"
	err = svc.Update(item.ID, f)

	var v forms.Violations
	require.ErrorAs(t, err, &v)
	require.Contains(t, v, "Paragraph")
}

func TestGalleryServiceDelete(t *testing.T) {
	svc := NewGalleryService(store.NewGalleryStore(setupTestDB(t)))

	item, err := svc.Create(validGalleryForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))
	require.ErrorIs(t, svc.Delete(item.ID), store.ErrNotFound)
}
