package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lyra/internal/adapters"
	"lyra/internal/clients"
	"lyra/internal/models"
	"lyra/internal/service"
	"lyra/internal/utils"

	"github.com/gin-gonic/gin"
)

type LaunchHandler struct {
	launchService service.LaunchService
	syncService   service.SyncService
}

func NewLaunchHandler(launchService service.LaunchService, syncService service.SyncService) *LaunchHandler {
	return &LaunchHandler{
		launchService: launchService,
		syncService:   syncService,
	}
}

// GetLaunches lists launches after running them through the
// search/filter/sort pipeline. Query params: range, filter, sort, q.
func (h *LaunchHandler) GetLaunches(c *gin.Context) {
	ctx := c.Request.Context()

	launches, err := h.syncService.GetLaunches(ctx)
	if err != nil {
		respondError(c, "failed to get launches", err)
		return
	}

	launches = h.launchService.FilterRange(launches, launchRange(c))
	launches = h.launchService.Query(
		launches,
		adapters.SanitizeQuery(c.Query("q")),
		models.FilterOption(c.DefaultQuery("filter", string(models.FilterAll))),
		models.SortOption(c.DefaultQuery("sort", string(models.SortDateDesc))),
	)

	c.JSON(http.StatusOK, gin.H{
		"count":    len(launches),
		"launches": launches,
	})
}

// GetEnrichedLaunches returns launches with presentation fragments
// attached, for clients that render lists directly.
func (h *LaunchHandler) GetEnrichedLaunches(c *gin.Context) {
	ctx := c.Request.Context()

	enriched, err := h.launchService.GetEnrichedLaunches(ctx, launchRange(c))
	if err != nil {
		respondError(c, "failed to get launches", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(enriched),
		"launches": enriched,
	})
}

func (h *LaunchHandler) GetLaunchDetails(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	details, err := h.launchService.GetLaunchDetails(ctx, id)
	if err != nil {
		respondError(c, "failed to get launch details", err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ExportLaunches streams the current launch set as an xlsx manifest or
// CSV. The same query params as GetLaunches apply.
func (h *LaunchHandler) ExportLaunches(c *gin.Context) {
	ctx := c.Request.Context()

	launches, err := h.syncService.GetLaunches(ctx)
	if err != nil {
		respondError(c, "failed to get launches", err)
		return
	}

	launches = h.launchService.FilterRange(launches, launchRange(c))
	launches = h.launchService.Query(
		launches,
		adapters.SanitizeQuery(c.Query("q")),
		models.FilterOption(c.DefaultQuery("filter", string(models.FilterAll))),
		models.SortOption(c.DefaultQuery("sort", string(models.SortDateDesc))),
	)

	filename := fmt.Sprintf("launches_%s", time.Now().Format("20060102_150405"))

	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		data, err := utils.BuildLaunchCSV(launches)
		if err != nil {
			respondError(c, "failed to build export", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		buf, err := utils.BuildLaunchManifest(launches)
		if err != nil {
			respondError(c, "failed to build export", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unsupported format",
			"message": "format must be xlsx or csv",
		})
	}
}

func (h *LaunchHandler) GetArchiveStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.syncService.GetArchiveStats(ctx)
	if err != nil {
		respondError(c, "failed to get archive stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *LaunchHandler) GetArchiveRecent(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	records, err := h.syncService.GetRecentRecords(ctx, limit)
	if err != nil {
		respondError(c, "failed to get archive records", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

func (h *LaunchHandler) ForceSync(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.syncService.FetchAndStoreLaunches(ctx); err != nil {
		respondError(c, "failed to sync launch data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "launch data synced successfully",
	})
}

func launchRange(c *gin.Context) service.LaunchRange {
	switch c.DefaultQuery("range", "all") {
	case "past":
		return service.RangePast
	case "upcoming":
		return service.RangeUpcoming
	default:
		return service.RangeAll
	}
}

// respondError maps upstream error kinds to HTTP statuses so callers can
// tell a missing launch from an upstream outage.
func respondError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError

	switch clients.ErrorKindOf(err) {
	case clients.ErrNotFound:
		status = http.StatusNotFound
	case clients.ErrClient:
		status = http.StatusBadRequest
	case clients.ErrValidation, clients.ErrServer, clients.ErrNetwork, clients.ErrTimeout:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"error":   msg,
		"message": err.Error(),
	})
}
