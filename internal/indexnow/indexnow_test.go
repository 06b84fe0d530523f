package indexnow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://www.endpointmedia.co.za"

func TestSubmitPostsProtocolPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL, Key: "abc123", BaseURL: base + "/", HTTP: srv.Client()})
	res, err := c.Submit(context.Background(), []string{
		"/pricing",
		" https://www.endpointmedia.co.za/pricing ",
		"https://evil.example/phish",
		"/blog/",
		"",
	})
	require.NoError(t, err)

	assert.Equal(t, Result{OK: true, Status: http.StatusAccepted}, res)
	assert.Equal(t, "www.endpointmedia.co.za", got.Host)
	assert.Equal(t, "abc123", got.Key)
	assert.Equal(t, base+"/abc123.txt", got.KeyLocation)
	assert.Equal(t, []string{base + "/pricing", base + "/blog"}, got.URLList)
}

func TestSubmitReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL, Key: "abc123", BaseURL: base, HTTP: srv.Client()})
	res, err := c.Submit(context.Background(), []string{"/"})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
}

func TestSubmitErrors(t *testing.T) {
	c := NewClient(Options{Key: "abc123", BaseURL: base})
	_, err := c.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoURLs)

	_, err = c.Submit(context.Background(), []string{"https://other.example/x"})
	assert.ErrorIs(t, err, ErrNoURLs)

	_, err = NewClient(Options{BaseURL: base}).Submit(context.Background(), []string{"/"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	down := NewClient(Options{Endpoint: "http://127.0.0.1:1", Key: "k", BaseURL: base})
	_, err = down.Submit(context.Background(), []string{"/"})
	assert.Error(t, err)
}

func TestClientDefaults(t *testing.T) {
	c := NewClient(Options{Key: " k ", BaseURL: base})
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, "k", c.Key())
	assert.Equal(t, base+"/k.txt", c.KeyLocation())
}

func TestCheckBearer(t *testing.T) {
	assert.NoError(t, CheckBearer("Bearer s3cret", "s3cret"))
	assert.ErrorIs(t, CheckBearer("Bearer wrong", "s3cret"), ErrUnauthorized)
	assert.ErrorIs(t, CheckBearer("s3cret", "s3cret"), ErrUnauthorized)
	assert.ErrorIs(t, CheckBearer("Bearer ", ""), ErrUnauthorized)
}
