package handlers

import "net/http"

// PageHandler serves the static content pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, r, "about.html", nil)
}

func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	render(w, r, "services.html", nil)
}
