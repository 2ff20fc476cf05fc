package handlers

import (
	"net/http"

	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/logger"
	"github.com/diewo77/portfolio-app/internal/mailer"
)

// ContactHandler validates visitor messages and hands them to the mail
// transport. Nothing is persisted.
type ContactHandler struct {
	mail mailer.Mailer
	log  *logger.Logger
}

func NewContactHandler(mail mailer.Mailer, log *logger.Logger) *ContactHandler {
	return &ContactHandler{mail: mail, log: log}
}

func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, r, "contact.html", map[string]any{"Form": forms.ContactForm{}})
	case http.MethodPost:
		h.contactPost(w, r)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

func (h *ContactHandler) contactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := forms.ContactFromRequest(r)
	if v := forms.Check(f); !v.Empty() {
		w.WriteHeader(http.StatusBadRequest)
		render(w, r, "contact.html", map[string]any{"Errors": v, "Form": f})
		return
	}
	msg := mailer.Message{Name: f.Name, Email: f.Email, Subject: f.Subject, Phone: f.Phone, Message: f.Message}
	if err := h.mail.Send(r.Context(), msg); err != nil {
		// Delivery failure is shown to the visitor, not swallowed.
		h.log.Warnw("contact mail delivery failed", "error", err)
		render(w, r, "contact.html", map[string]any{
			"Error": "Your message could not be sent, please try again later.",
			"Form":  f,
		})
		return
	}
	setFlash(w, "Thanks, your message has been sent.")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
