package selector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCandidates = []model.Picker{
	{ID: 1, FirstName: "Arjun", LastName: "Das", City: "Kolkata", State: "West Bengal"},
	{ID: 2, FirstName: "Priya", LastName: "Sen", City: "Kolkata", State: "West Bengal"},
}

func TestClient_SelectNearest_PicksCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/nearest-picker", r.URL.Path)

		var req selectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Candidates, 2)
		assert.Equal(t, "Arjun Das", req.Candidates[0].Name)

		id := int64(2)
		json.NewEncoder(w).Encode(selectResponse{PickerID: &id})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	picker, err := client.SelectNearest(context.Background(), testCandidates, model.Location{Lat: 22.57, Lng: 88.36}, model.Address{City: "Kolkata"})

	require.NoError(t, err)
	require.NotNil(t, picker)
	assert.Equal(t, int64(2), picker.ID)
}

func TestClient_SelectNearest_EmptyCandidatesSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	picker, err := client.SelectNearest(context.Background(), nil, model.Location{}, model.Address{})

	require.NoError(t, err)
	assert.Nil(t, picker)
	assert.False(t, called)
}

func TestClient_SelectNearest_NullVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pickerId": null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	picker, err := client.SelectNearest(context.Background(), testCandidates, model.Location{}, model.Address{})

	require.NoError(t, err)
	assert.Nil(t, picker)
}

func TestClient_SelectNearest_UnparseableVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	picker, err := client.SelectNearest(context.Background(), testCandidates, model.Location{}, model.Address{})

	require.NoError(t, err)
	assert.Nil(t, picker)
}

func TestClient_SelectNearest_UnknownPickerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pickerId": 99}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	picker, err := client.SelectNearest(context.Background(), testCandidates, model.Location{}, model.Address{})

	require.NoError(t, err)
	assert.Nil(t, picker)
}

func TestClient_SelectNearest_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL, 50*time.Millisecond)

	picker, err := client.SelectNearest(context.Background(), testCandidates, model.Location{}, model.Address{})

	assert.Error(t, err)
	assert.Nil(t, picker)
}
