package render

import (
	"fmt"
	"net/url"
	"strings"
)

// ContactForm holds the fields of the contact card. Submitting builds a
// mail-compose link; nothing is sent or stored.
type ContactForm struct {
	Recipient string
	Subject   string
	Message   string
}

// NewContactForm creates an empty form addressed to recipient
func NewContactForm(recipient string) *ContactForm {
	return &ContactForm{Recipient: recipient}
}

// Set updates a form field by its input name
func (f *ContactForm) Set(field, value string) error {
	switch field {
	case "subject":
		f.Subject = value
	case "message":
		f.Message = value
	default:
		return fmt.Errorf("unknown contact form field %q", field)
	}
	return nil
}

// Submit returns the mailto link for the current fields
func (f *ContactForm) Submit() string {
	return "mailto:" + f.Recipient +
		"?subject=" + encodeURIComponent(f.Subject) +
		"&body=" + encodeURIComponent(f.Message)
}

// encodeURIComponent percent-encodes everything except the characters a
// browser's encodeURIComponent leaves alone
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(keep), keep)
	}
	return escaped
}
