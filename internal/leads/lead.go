// Package leads validates enquiries from the site's forms and hands them to
// notifiers.
package leads

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Kind names the form a lead came from.
type Kind string

const (
	KindContact Kind = "contact"
	KindAudit   Kind = "audit"
	KindBooking Kind = "booking"
)

// Valid reports whether k is a known form.
func (k Kind) Valid() bool {
	switch k {
	case KindContact, KindAudit, KindBooking:
		return true
	}
	return false
}

const (
	maxNameLen     = 120
	maxEmailLen    = 254
	maxMessageLen  = 5000
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("leads: invalid lead")

// Lead is one enquiry. Booking forms map companyName to BusinessName, yourName
// to Name and whatsapp to Phone.
type Lead struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Message      string    `json:"message,omitempty"`
	Source       string    `json:"source,omitempty"`
	ReceivedAt   time.Time `json:"receivedAt"`

	// Honeypot is the hidden field bots fill in. It is never serialised.
	Honeypot string `json:"-"`
}

// Normalize trims every field, collapses whitespace in single-line fields and
// lower-cases the email.
func (l *Lead) Normalize() {
	l.Kind = Kind(strings.ToLower(strings.TrimSpace(string(l.Kind))))
	l.Name = collapse(l.Name)
	l.BusinessName = collapse(l.BusinessName)
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	l.Phone = collapse(l.Phone)
	l.Message = strings.TrimSpace(strings.ReplaceAll(l.Message, "\r\n", "\n"))
	l.Source = strings.TrimSpace(l.Source)
	l.Honeypot = strings.TrimSpace(l.Honeypot)
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

// IsSpam reports whether the honeypot was filled in.
func (l Lead) IsSpam() bool { return l.Honeypot != "" }

// ValidationError lists the problem with each offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "leads: invalid lead: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks the required fields for the lead's kind.
func (l Lead) Validate() error {
	problems := map[string]string{}
	required := func(field, value, label string) {
		if value == "" {
			problems[field] = label + " is required"
		}
	}

	switch l.Kind {
	case KindContact:
		required("name", l.Name, "Name")
		required("email", l.Email, "Email")
		required("message", l.Message, "Message")
	case KindAudit:
		required("name", l.Name, "Name")
		required("business_name", l.BusinessName, "Business name")
		required("email", l.Email, "Email")
	case KindBooking:
		required("yourName", l.Name, "Your name")
		required("companyName", l.BusinessName, "Company name")
		required("email", l.Email, "Email")
		required("whatsapp", l.Phone, "WhatsApp number")
	default:
		problems["kind"] = fmt.Sprintf("unknown form %q", l.Kind)
	}

	if l.Email != "" {
		if utf8.RuneCountInString(l.Email) > maxEmailLen {
			problems["email"] = "Email is too long"
		} else if addr, err := mail.ParseAddress(l.Email); err != nil || addr.Address != l.Email {
			problems["email"] = "Enter a valid email address"
		}
	}
	if l.Phone != "" {
		field := "phone"
		if l.Kind == KindBooking {
			field = "whatsapp"
		}
		if n := countDigits(l.Phone); n < minPhoneDigits || n > maxPhoneDigits {
			problems[field] = "Enter a valid phone number"
		}
	}
	if utf8.RuneCountInString(l.Name) > maxNameLen {
		problems[nameField(l.Kind)] = "Name is too long"
	}
	if utf8.RuneCountInString(l.BusinessName) > maxNameLen {
		problems[businessField(l.Kind)] = "Business name is too long"
	}
	if utf8.RuneCountInString(l.Message) > maxMessageLen {
		problems["message"] = "Message is too long"
	}

	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}

func nameField(k Kind) string {
	if k == KindBooking {
		return "yourName"
	}
	return "name"
}

func businessField(k Kind) string {
	if k == KindBooking {
		return "companyName"
	}
	return "business_name"
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
