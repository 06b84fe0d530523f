package leads

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu    sync.Mutex
	leads []Lead
	err   error
}

func (r *recordingNotifier) Notify(_ context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return r.err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newTestService(t *testing.T, n Notifier) *Service {
	t.Helper()
	now := time.Date(2025, time.December, 2, 8, 30, 0, 0, time.UTC)
	svc, err := NewService(ServiceDeps{
		Notifier: n,
		Clock:    func() time.Time { return now },
		NewID:    func() string { return "01JDTESTLEAD" },
	})
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresNotifier(t *testing.T) {
	_, err := NewService(ServiceDeps{})
	assert.Error(t, err)
}

func TestSubmitDeliversValidLead(t *testing.T) {
	rec := &recordingNotifier{}
	svc := newTestService(t, rec)

	receipt, err := svc.Submit(context.Background(), Lead{
		Kind:    KindContact,
		Name:    " Thabo ",
		Email:   "THABO@example.co.za",
		Message: "Need a site",
		Source:  "/contact",
	})
	require.NoError(t, err)

	assert.Equal(t, ReceivedMessage, receipt.Message)
	assert.Equal(t, "01JDTESTLEAD", receipt.ID)
	assert.False(t, receipt.Spam)
	require.Len(t, rec.leads, 1)
	got := rec.leads[0]
	assert.Equal(t, "Thabo", got.Name)
	assert.Equal(t, "thabo@example.co.za", got.Email)
	assert.Equal(t, "01JDTESTLEAD", got.ID)
	assert.Equal(t, time.Date(2025, time.December, 2, 8, 30, 0, 0, time.UTC), got.ReceivedAt)
}

func TestSubmitBookingMessage(t *testing.T) {
	rec := &recordingNotifier{}
	svc := newTestService(t, rec)

	receipt, err := svc.Submit(context.Background(), Lead{
		Kind:         KindBooking,
		Name:         "Thabo",
		BusinessName: "Plumb Co",
		Email:        "thabo@plumb.co.za",
		Phone:        "082 123 4567",
	})
	require.NoError(t, err)
	assert.Equal(t, BookingMessage, receipt.Message)
}

func TestSubmitHoneypotIsSilent(t *testing.T) {
	rec := &recordingNotifier{}
	svc := newTestService(t, rec)

	receipt, err := svc.Submit(context.Background(), Lead{Kind: KindContact, Honeypot: "http://spam.example"})
	require.NoError(t, err)

	assert.True(t, receipt.Spam)
	assert.Equal(t, ReceivedMessage, receipt.Message)
	assert.Empty(t, rec.leads)
}

func TestSubmitInvalid(t *testing.T) {
	rec := &recordingNotifier{}
	svc := newTestService(t, rec)

	_, err := svc.Submit(context.Background(), Lead{Kind: KindContact, Name: "Thabo"})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, rec.leads)
}

func TestSubmitNotifyFailure(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("topic gone")}
	svc := newTestService(t, rec)

	_, err := svc.Submit(context.Background(), Lead{Kind: KindAudit, Name: "T", BusinessName: "B", Email: "t@b.co"})
	assert.ErrorIs(t, err, ErrNotify)
	assert.Contains(t, err.Error(), "topic gone")
}
