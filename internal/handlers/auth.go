package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/portfolio-app/internal/auth"
	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/services"
)

// AuthHandler serves sign-in, registration and logout.
type AuthHandler struct {
	svc      *services.AuthService
	sessions *auth.Sessions
}

func NewAuthHandler(svc *services.AuthService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, r, "signin.html", map[string]any{"Form": forms.SignInForm{}})
	case http.MethodPost:
		h.signInPost(w, r)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

func (h *AuthHandler) signInPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := forms.SignInFromRequest(r)
	if v := forms.Check(f); !v.Empty() {
		render(w, r, "signin.html", map[string]any{"Errors": v, "Form": f})
		return
	}
	user, err := h.svc.SignIn(f.Email, f.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		setFlash(w, "That email does not exist, please try again.")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
	case errors.Is(err, services.ErrWrongPassword):
		setFlash(w, "Password incorrect, please try again.")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
	case err != nil:
		http.Error(w, "sign-in failed", http.StatusInternalServerError)
	default:
		h.sessions.Create(w, user.ID)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, r, "register.html", map[string]any{"Form": forms.RegisterForm{}})
	case http.MethodPost:
		h.registerPost(w, r)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

func (h *AuthHandler) registerPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := forms.RegisterFromRequest(r)
	if v := forms.Check(f); !v.Empty() {
		render(w, r, "register.html", map[string]any{"Errors": v, "Form": f})
		return
	}
	user, err := h.svc.Register(f.Username, f.Email, f.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		setFlash(w, "You've already signed up with that email, sign in instead.")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
	case err != nil:
		http.Error(w, "registration failed", http.StatusInternalServerError)
	default:
		// Registration implies sign-in.
		h.sessions.Create(w, user.ID)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
