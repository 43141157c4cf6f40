package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/breaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedClient_SignsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		want := Sign([]byte("s3cret"), r.Header.Get(HeaderTimestamp), r.Method, r.URL.Path, body)

		assert.Equal(t, "key", r.Header.Get(HeaderAPIKey))
		assert.Equal(t, want, r.Header.Get(HeaderSignature))
		assert.JSONEq(t, `{"amount":"10"}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "abc"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "key", "s3cret", time.Second)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/v1/things", map[string]string{"amount": "10"}, &out))
	assert.Equal(t, "abc", out.ID)
}

func TestSignedClient_ErrorClassification(t *testing.T) {
	status := http.StatusBadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "s3cret", time.Second)

	err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
	var clientErr *breaker.ClientError
	require.True(t, errors.As(err, &clientErr))
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, "nope", statusErr.Body)

	status = http.StatusBadGateway
	err = c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.False(t, errors.As(err, &clientErr))
	assert.True(t, errors.As(err, &statusErr))
}
