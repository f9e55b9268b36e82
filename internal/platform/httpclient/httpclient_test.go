package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("not a url", 0)
	require.Error(t, err)

	c, err := New("http://example.test/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/owners/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ana"}`, string(b))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":2}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out struct {
		Count int `json:"count"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "owners/search", map[string]string{"name": "Ana"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestDoJSON_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/owners", nil)
	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusServiceUnavailable, herr.StatusCode)
	assert.Equal(t, "boom", herr.Body)
}

func TestDoJSON_AbsoluteURLAndMissingBase(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New("", 0)
	require.NoError(t, err)

	assert.NoError(t, c.GetJSON(context.Background(), ts.URL+"/ping", nil))
	assert.Error(t, c.GetJSON(context.Background(), "/ping", nil))
	assert.Error(t, c.GetJSON(context.Background(), "  ", nil))

	var nilClient *Client
	assert.Error(t, nilClient.GetJSON(context.Background(), ts.URL, nil))
}

func TestDoJSON_BadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out map[string]any
	assert.Error(t, c.GetJSON(context.Background(), "/", &out))
}
