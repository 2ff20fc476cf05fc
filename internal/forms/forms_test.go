package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryFormBounds(t *testing.T) {
	ok := GalleryForm{Header: "Sunset", Paragraph: "Golden hour over the harbour.", Image: "", Category: "photography"}
	assert.True(t, Check(ok).Empty())

	tooShort := GalleryForm{Header: "x", Paragraph: "p", Image: "", Category: "xy"}
	v := Check(tooShort)
	assert.Contains(t, v, "Header")
	assert.Contains(t, v, "Paragraph")
	assert.Contains(t, v, "Category")

	tooLong := GalleryForm{
		Header:    strings.Repeat("h", 21),
		Paragraph: strings.Repeat("p", 101),
		Image:     strings.Repeat("i", 251),
		Category:  strings.Repeat("c", 101),
	}
	v = Check(tooLong)
	assert.Contains(t, v, "Header")
	assert.Contains(t, v, "Paragraph")
	assert.Contains(t, v, "Image")
	assert.Contains(t, v, "Category")
}

func TestContactFormRules(t *testing.T) {
	ok := ContactForm{Email: "visitor@example.com", Message: "Hi"}
	assert.True(t, Check(ok).Empty())

	v := Check(ContactForm{Email: "not-an-email", Message: ""})
	assert.Contains(t, v, "Email")
	assert.Contains(t, v, "Message")

	// Name and subject are optional but bounded when present.
	v = Check(ContactForm{Email: "visitor@example.com", Message: "Hi", Name: "x", Subject: "y"})
	assert.Contains(t, v, "Name")
	assert.Contains(t, v, "Subject")
}

func TestRegisterFormRules(t *testing.T) {
	assert.True(t, Check(RegisterForm{Username: "alice", Email: "alice@example.com", Password: "s3cret"}).Empty())

	v := Check(RegisterForm{Username: "", Email: "nope", Password: "x"})
	assert.Contains(t, v, "Username")
	assert.Contains(t, v, "Email")
	assert.Contains(t, v, "Password")
}

func TestViolationsError(t *testing.T) {
	v := Violations{"Header": "required"}
	assert.Contains(t, v.Error(), "Header")
}

func TestGalleryFromRequestTrims(t *testing.T) {
	form := url.Values{
		"header":    {"  Sunset  "},
		"paragraph": {" A paragraph. "},
		"image":     {" /img/s.jpg "},
		"category":  {" photography "},
	}
	r := httptest.NewRequest("POST", "/add", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	f := GalleryFromRequest(r)
	assert.Equal(t, "Sunset", f.Header)
	assert.Equal(t, "A paragraph.", f.Paragraph)
	assert.Equal(t, "/img/s.jpg", f.Image)
	assert.Equal(t, "photography", f.Category)
}

func TestSignInFromRequestKeepsPasswordVerbatim(t *testing.T) {
	form := url.Values{"email": {" a@b.com "}, "password": {" spaced pass "}}
	r := httptest.NewRequest("POST", "/signin", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	f := SignInFromRequest(r)
	assert.Equal(t, "a@b.com", f.Email)
	assert.Equal(t, " spaced pass ", f.Password)
}
