// Package forms declares the site's form models and their field rules.
// Rules live in validator tags so the constraint set reads as one
// declarative block per form, the way the templates present them.
package forms

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignInForm authenticates an existing account.
type SignInForm struct {
	Email    string `validate:"required,min=2"`
	Password string `validate:"required,min=2"`
}

// RegisterForm creates an account; registration implies sign-in.
type RegisterForm struct {
	Username string `validate:"required,min=2,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=2"`
}

// GalleryForm backs both add and edit. One policy for both: the header cap
// follows the column size (20); paragraph and category follow the wider of
// the two historical bounds.
type GalleryForm struct {
	Header    string `validate:"required,min=2,max=20"`
	Paragraph string `validate:"required,min=2,max=100"`
	Image     string `validate:"omitempty,max=250"`
	Category  string `validate:"required,min=3,max=100"`
}

// ContactForm relays a visitor message; only email and message are required.
type ContactForm struct {
	Name    string `validate:"omitempty,min=2"`
	Email   string `validate:"required,email"`
	Subject string `validate:"omitempty,min=2"`
	Phone   string `validate:"omitempty,max=30"`
	Message string `validate:"required,min=2"`
}

// Violations maps field name to a short message code for template display.
// It satisfies error so services can return it alongside store errors.
type Violations map[string]string

func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func (v Violations) Empty() bool { return len(v) == 0 }

var validate = validator.New()

// Check validates a form struct and returns the field violations, or nil.
func Check(form any) Violations {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{"form": "invalid"}
	}
	v := Violations{}
	for _, fe := range verrs {
		v[fe.Field()] = messageFor(fe)
	}
	return v
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email"
	case "min":
		return "too short (min " + fe.Param() + ")"
	case "max":
		return "too long (max " + fe.Param() + ")"
	default:
		return "invalid"
	}
}

// Form value readers. Passwords are never trimmed; everything else is.

func SignInFromRequest(r *http.Request) SignInForm {
	return SignInForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
}

func RegisterFromRequest(r *http.Request) RegisterForm {
	return RegisterForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
}

func GalleryFromRequest(r *http.Request) GalleryForm {
	return GalleryForm{
		Header:    strings.TrimSpace(r.FormValue("header")),
		Paragraph: strings.TrimSpace(r.FormValue("paragraph")),
		Image:     strings.TrimSpace(r.FormValue("image")),
		Category:  strings.TrimSpace(r.FormValue("category")),
	}
}

func ContactFromRequest(r *http.Request) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Subject: strings.TrimSpace(r.FormValue("subject")),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
}
