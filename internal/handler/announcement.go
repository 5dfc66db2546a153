package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sajid-inmogr/admin-backend/internal/domain"
	"github.com/sajid-inmogr/admin-backend/internal/repository"
	"github.com/sajid-inmogr/admin-backend/internal/service"
)

// CreateAnnouncement requires an image: a request without a file never
// produces a row. A row that fails to persist after a successful upload
// leaves the asset orphaned in the store, which is accepted.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	stored, err := h.uploads.Receive(c.Request.Context(), c.Request, "file")
	if err != nil {
		h.log.Error("Announcement upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": uploadMessage(err)})
		return
	}

	announcement := &domain.Announcement{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("short_description"),
		ImageName:        c.PostForm("image_name"),
		ShowOnHome:       c.PostForm("show_on_home") == "true",
		CategoryID:       parseOptionalID(c.PostForm("announcementCategory_id")),
		ImageLink:        stored.Link,
		AssetID:          stored.AssetID,
	}

	if err := h.announcements.Create(c.Request.Context(), announcement); err != nil {
		h.log.Error("Failed to create announcement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  announcement,
	})
}

func (h *Handler) GetAnnouncementByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error getting announcement"})
		return
	}

	announcement, err := h.announcements.FindByID(c.Request.Context(), id, "Category")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Error getting announcement"})
			return
		}
		h.log.Error("Failed to get announcement", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  announcement,
	})
}

// GetAllAnnouncements keeps the original policy of treating an empty
// collection as not-found rather than an empty 200.
func (h *Handler) GetAllAnnouncements(c *gin.Context) {
	announcements, err := h.announcements.FindAll(c.Request.Context(), "Category")
	if err != nil {
		h.log.Error("Failed to list announcements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting announcements"})
		return
	}
	if len(announcements) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error getting announcements/no announcements found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "success",
		"announcements": announcements,
	})
}

// UpdateAnnouncementByID replaces the image only when a new file is
// attached. The old asset is discarded after the row referencing the
// new one is saved, never before.
func (h *Handler) UpdateAnnouncementByID(c *gin.Context) {
	stored, err := h.uploads.Receive(c.Request.Context(), c.Request, "file")
	if err != nil && !errors.Is(err, service.ErrNoFile) {
		h.log.Error("Announcement upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": uploadMessage(err)})
		return
	}

	announcement := h.resolveAnnouncement(c)
	if announcement == nil {
		// The fresh upload was never referenced by any row.
		if stored != nil {
			h.uploads.Discard(stored.AssetID)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot find announcement"})
		return
	}

	announcement.Title = c.PostForm("title")
	announcement.ShortDescription = c.PostForm("short_description")
	announcement.ShowOnHome = c.PostForm("show_on_home") == "true"
	announcement.CategoryID = parseOptionalID(c.PostForm("announcementCategory_id"))

	oldAssetID := ""
	if stored != nil {
		oldAssetID = announcement.AssetID
		announcement.ImageName = c.PostForm("image_name")
		announcement.ImageLink = stored.Link
		announcement.AssetID = stored.AssetID
	}

	if err := h.announcements.Save(c.Request.Context(), announcement); err != nil {
		h.log.Error("Failed to update announcement", zap.Int64("id", announcement.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating announcement"})
		return
	}

	if oldAssetID != "" {
		h.uploads.Discard(oldAssetID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  announcement,
	})
}

// DeleteAnnouncementByID discards the remote asset only once the row
// delete has succeeded.
func (h *Handler) DeleteAnnouncementByID(c *gin.Context) {
	announcement := h.resolveAnnouncement(c)
	if announcement == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cannot find announcement"})
		return
	}

	if err := h.announcements.Delete(c.Request.Context(), announcement.ID); err != nil {
		h.log.Error("Failed to delete announcement", zap.Int64("id", announcement.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting announcement"})
		return
	}

	h.uploads.Discard(announcement.AssetID)

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

func (h *Handler) resolveAnnouncement(c *gin.Context) *domain.Announcement {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return nil
	}
	announcement, err := h.announcements.FindByID(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Error("Failed to find announcement", zap.Int64("id", id), zap.Error(err))
		}
		return nil
	}
	return announcement
}
