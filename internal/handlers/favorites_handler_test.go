package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoritesService struct {
	ids map[string]bool
}

func newFakeFavorites() *fakeFavoritesService {
	return &fakeFavoritesService{ids: make(map[string]bool)}
}

func (f *fakeFavoritesService) List(ctx context.Context) ([]string, error) {
	out := []string{}
	for id := range f.ids {
		out = append(out, id)
	}
	return out, nil
}

func (f *fakeFavoritesService) Add(ctx context.Context, id string) error {
	f.ids[id] = true
	return nil
}

func (f *fakeFavoritesService) Remove(ctx context.Context, id string) error {
	delete(f.ids, id)
	return nil
}

func (f *fakeFavoritesService) Toggle(ctx context.Context, id string) (bool, error) {
	if f.ids[id] {
		delete(f.ids, id)
		return false, nil
	}
	f.ids[id] = true
	return true, nil
}

func (f *fakeFavoritesService) IsFavorite(ctx context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func newFavoritesRouter() (*gin.Engine, *fakeFavoritesService) {
	gin.SetMode(gin.TestMode)

	svc := newFakeFavorites()
	handler := NewFavoritesHandler(svc)

	r := gin.New()
	r.GET("/favorites", handler.GetFavorites)
	r.POST("/favorites/:id", handler.AddFavorite)
	r.DELETE("/favorites/:id", handler.RemoveFavorite)
	r.POST("/favorites/:id/toggle", handler.ToggleFavorite)
	return r, svc
}

func TestFavoritesLifecycle(t *testing.T) {
	r, svc := newFavoritesRouter()

	w := doRequest(r, http.MethodPost, "/favorites/l1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.ids["l1"])

	w = doRequest(r, http.MethodGet, "/favorites")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count     int      `json:"count"`
		Favorites []string `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, []string{"l1"}, body.Favorites)

	w = doRequest(r, http.MethodDelete, "/favorites/l1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.ids["l1"])
}

func TestFavoritesToggleEndpoint(t *testing.T) {
	r, _ := newFavoritesRouter()

	w := doRequest(r, http.MethodPost, "/favorites/l2/toggle")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool `json:"success"`
		Favorite bool `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Favorite)

	w = doRequest(r, http.MethodPost, "/favorites/l2/toggle")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Favorite)
}
