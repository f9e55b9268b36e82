package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-playdate-matcher/internal/domain/matching"
	"dog-playdate-matcher/internal/platform/httpclient"
	"dog-playdate-matcher/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownersBody = `{"users":[
	{"id":"1","name":"Alice","gender":"Female","relationship_status":"Single","location":[40.7,-74.0],
	 "availability":["Morning"],
	 "dogs":[{"dog_name":"Rex","dog_breed":"Poodle","dog_age":"2 years","dog_size":"Small","dog_size_in_lb":12,
	          "dog_energy":"Low","dog_friendly":"Neutral","shots_up_to_date":true}]},
	{"id":"2","name":"Bob","location":[40.7,-74.0],"availability":["Morning"],"dogs":[]},
	{"id":"3","name":"Carol","location":[40.7,-74.0],"availability":["Midnight"],
	 "dogs":[{"dog_name":"Kai","dog_breed":"Pug","dog_size":"Small","dog_energy":"Low","dog_friendly":"Neutral"}]}
]}`

func TestSource_ListCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/owners", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ownersBody))
	}))
	defer ts.Close()

	client, err := httpclient.New(ts.URL+"/", time.Second)
	require.NoError(t, err)

	owners, err := NewSource(client, logger.NewTest(t)).ListCandidates(context.Background())
	require.NoError(t, err)

	// Bob (sin perros) y Carol (franja desconocida) se descartan en el borde
	require.Len(t, owners, 1)
	assert.Equal(t, "1", owners[0].ID)
	assert.Equal(t, matching.SizeSmall, owners[0].Dogs[0].Size)
	assert.True(t, owners[0].Dogs[0].Vaccinated)
}

func TestSource_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client, err := httpclient.New(ts.URL, time.Second)
	require.NoError(t, err)

	_, err = NewSource(client, nil).ListCandidates(context.Background())
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "down for maintenance", httpErr.Body)
}
