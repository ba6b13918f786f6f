package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costevida/internal/errors"
	"costevida/internal/services"
)

// SnapshotHandler handles data export and import requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Export handles the export of the user's full data set.
// @Summary     Export data
// @Description Download a portable snapshot of all expenses, catalogs, and settings
// @Tags        snapshot
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Snapshot "Snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.snapshotService.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="costevida-export.json"`)
	c.JSON(http.StatusOK, snap)
}

// Import handles the import of a previously exported snapshot.
// @Summary     Import data
// @Description Replace the user's data with a snapshot; collections absent from the snapshot are left untouched
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.Snapshot true "Snapshot"
// @Success     200 {object} map[string]string "Imported"
// @Failure     400 {object} ErrorResponse "Invalid snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /import [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var snap services.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.snapshotService.Import(userID, &snap); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot imported"})
}
