package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/diewo77/portfolio-app/internal/auth"
	"github.com/diewo77/portfolio-app/internal/forms"
	"github.com/diewo77/portfolio-app/internal/view"
)

// render wraps view.Render with the data every page expects: SignedIn for
// the nav, an Errors map so field lookups never fail, and the pending
// flash message, consumed on read.
func render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["SignedIn"]; !ok {
		_, signed := auth.UserIDFromContext(r.Context())
		data["SignedIn"] = signed
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = forms.Violations{}
	}
	if _, ok := data["Flash"]; !ok {
		if msg := popFlash(w, r); msg != "" {
			data["Flash"] = msg
		}
	}
	if err := view.Render(w, r, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("template error"))
	}
}

// setFlash queues a one-shot message for the next rendered page.
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: url.QueryEscape(msg), Path: "/"})
}

// popFlash reads and clears the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie("flash")
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	if dec, derr := url.QueryUnescape(c.Value); derr == nil {
		return dec
	}
	return c.Value
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
