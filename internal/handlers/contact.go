package handlers

import (
	"net/http"

	"tahiru.dev/internal/models"
	"tahiru.dev/internal/render"
)

// ContactHandler turns the contact form into a mail-compose link
type ContactHandler struct {
	recipient string
}

// NewContactHandler creates a new ContactHandler for the document's
// contact form
func NewContactHandler(doc *models.Document) *ContactHandler {
	h := &ContactHandler{}
	if doc != nil && doc.ContactForm != nil {
		h.recipient = doc.ContactForm.Email
	}
	return h
}

// Compose handles GET /contact. Nothing is validated, stored or sent; the
// browser is redirected to its mail client.
func (h *ContactHandler) Compose(w http.ResponseWriter, r *http.Request) {
	if h.recipient == "" {
		http.NotFound(w, r)
		return
	}

	form := render.NewContactForm(h.recipient)
	q := r.URL.Query()
	_ = form.Set("subject", q.Get("subject"))
	_ = form.Set("message", q.Get("message"))

	http.Redirect(w, r, form.Submit(), http.StatusSeeOther)
}
