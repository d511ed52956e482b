package handlers

import (
	"net/http"

	"lyra/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	service service.FavoritesService
}

func NewFavoritesHandler(service service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{service: service}
}

func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := h.service.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get favorites",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(ids),
		"favorites": ids,
	})
}

func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.Add(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to add favorite",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.Remove(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to remove favorite",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	saved, err := h.service.Toggle(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to toggle favorite",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"favorite": saved,
	})
}
