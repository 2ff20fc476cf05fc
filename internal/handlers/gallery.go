package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/httpx"
	"github.com/diewo77/portfolio-app/internal/services"
	"github.com/diewo77/portfolio-app/internal/store"
)

// GalleryHandler serves the public listing and the gated add/edit/delete
// operations. Endpoints answer HTML for browsers and JSON when the client
// asks for it.
type GalleryHandler struct {
	svc   *services.GalleryService
	items *store.GalleryStore
}

func NewGalleryHandler(svc *services.GalleryService, items *store.GalleryStore) *GalleryHandler {
	return &GalleryHandler{svc: svc, items: items}
}

// Home lists all gallery items ordered by id.
func (h *GalleryHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	items, err := h.items.ListOrdered()
	if err != nil {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_items", nil)
			return
		}
		http.Error(w, "failed to list items", http.StatusInternalServerError)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
		return
	}
	render(w, r, "index.html", map[string]any{"Items": items})
}

func (h *GalleryHandler) Add(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, r, "add.html", map[string]any{"Form": forms.GalleryForm{}})
	case http.MethodPost:
		h.addPost(w, r)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

func (h *GalleryHandler) addPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := forms.GalleryFromRequest(r)
	item, err := h.svc.Create(f)
	var v forms.Violations
	switch {
	case errors.As(err, &v):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		render(w, r, "add.html", map[string]any{"Errors": v, "Form": f})
	case errors.Is(err, store.ErrDuplicateHeader):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusConflict, "header_already_exists", nil)
			return
		}
		w.WriteHeader(http.StatusConflict)
		render(w, r, "add.html", map[string]any{"Error": "An item with that header already exists.", "Form": f})
	case err != nil:
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusInternalServerError, "item_create_failed", nil)
			return
		}
		http.Error(w, "could not save item", http.StatusInternalServerError)
	default:
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusCreated, item)
			return
		}
		setFlash(w, "Item added.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *GalleryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		item, err := h.items.Get(id)
		if err != nil {
			h.notFound(w, r)
			return
		}
		f := forms.GalleryForm{Header: item.Header, Paragraph: item.Paragraph, Image: item.Image, Category: item.Category}
		render(w, r, "edit.html", map[string]any{"Form": f, "ID": item.ID})
	case http.MethodPost:
		h.editPost(w, r, id)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

func (h *GalleryHandler) editPost(w http.ResponseWriter, r *http.Request, id uint) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := forms.GalleryFromRequest(r)
	err := h.svc.Update(id, f)
	var v forms.Violations
	switch {
	case errors.As(err, &v):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		render(w, r, "edit.html", map[string]any{"Errors": v, "Form": f, "ID": id})
	case errors.Is(err, store.ErrNotFound):
		h.notFound(w, r)
	case errors.Is(err, store.ErrDuplicateHeader):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusConflict, "header_already_exists", nil)
			return
		}
		w.WriteHeader(http.StatusConflict)
		render(w, r, "edit.html", map[string]any{"Error": "An item with that header already exists.", "Form": f, "ID": id})
	case err != nil:
		http.Error(w, "could not update item", http.StatusInternalServerError)
	default:
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, map[string]any{"updated": id})
			return
		}
		setFlash(w, "Item updated.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, "GET,POST")
		return
	}
	id, ok := itemID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	switch err := h.svc.Delete(id); {
	case errors.Is(err, store.ErrNotFound):
		h.notFound(w, r)
	case err != nil:
		http.Error(w, "could not delete item", http.StatusInternalServerError)
	default:
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
			return
		}
		setFlash(w, "Item deleted.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *GalleryHandler) notFound(w http.ResponseWriter, r *http.Request) {
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	http.NotFound(w, r)
}

// itemID reads the item id from the query string (or the form as a
// fallback). Zero and non-numeric ids count as absent.
func itemID(r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		idStr = r.FormValue("id")
	}
	n, err := strconv.Atoi(idStr)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
