package leads

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalid))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	return ve.Fields
}

func TestValidateRequiredByKind(t *testing.T) {
	fields := fieldErrors(t, Lead{Kind: KindContact}.Validate())
	assert.Equal(t, []string{"email", "message", "name"}, sortedKeys(fields))

	fields = fieldErrors(t, Lead{Kind: KindAudit, Name: "Thabo"}.Validate())
	assert.Equal(t, []string{"business_name", "email"}, sortedKeys(fields))

	fields = fieldErrors(t, Lead{Kind: KindBooking}.Validate())
	assert.Equal(t, []string{"companyName", "email", "whatsapp", "yourName"}, sortedKeys(fields))

	fields = fieldErrors(t, Lead{Kind: "newsletter"}.Validate())
	assert.Contains(t, fields["kind"], "newsletter")
}

func TestValidateFormats(t *testing.T) {
	base := Lead{Kind: KindContact, Name: "Thabo", Email: "thabo@example.co.za", Message: "Hi"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Email = "Thabo <thabo@example.co.za>"
	assert.Contains(t, fieldErrors(t, bad.Validate()), "email")

	bad = base
	bad.Email = "not-an-email"
	assert.Contains(t, fieldErrors(t, bad.Validate()), "email")

	bad = base
	bad.Phone = "12345"
	assert.Contains(t, fieldErrors(t, bad.Validate()), "phone")

	ok := base
	ok.Phone = "+27 76 972 4559"
	assert.NoError(t, ok.Validate())

	bad = base
	bad.Name = strings.Repeat("a", 121)
	assert.Equal(t, "Name is too long", fieldErrors(t, bad.Validate())["name"])

	bad = base
	bad.Message = strings.Repeat("m", 5001)
	assert.Contains(t, fieldErrors(t, bad.Validate()), "message")

	booking := Lead{Kind: KindBooking, Name: "Thabo", BusinessName: "Plumb Co", Email: "a@b.co", Phone: "0821"}
	assert.Contains(t, fieldErrors(t, booking.Validate()), "whatsapp")
}

func TestNormalize(t *testing.T) {
	l := Lead{
		Kind:     " Contact ",
		Name:     "  Thabo   Nkosi ",
		Email:    " Thabo@Example.CO.ZA ",
		Message:  "line one\r\nline two  \n",
		Honeypot: "  ",
	}
	l.Normalize()

	assert.Equal(t, KindContact, l.Kind)
	assert.Equal(t, "Thabo Nkosi", l.Name)
	assert.Equal(t, "thabo@example.co.za", l.Email)
	assert.Equal(t, "line one\nline two", l.Message)
	assert.False(t, l.IsSpam())
}

func TestValidationErrorMessageSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "Name is required", "email": "Email is required"}}
	assert.Equal(t, "leads: invalid lead: email: Email is required; name: Name is required", err.Error())
}
