package handler

import (
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sajid-inmogr/admin-backend/internal/domain"
	"github.com/sajid-inmogr/admin-backend/internal/repository"
	"github.com/sajid-inmogr/admin-backend/internal/service"
)

// Handler carries the injected stores and the upload gateway. Nothing
// here is process-global; tests wire their own instances.
type Handler struct {
	announcements *repository.Store[domain.Announcement]
	clients       *repository.Store[domain.Client]
	products      *repository.ProductStore
	uploads       service.UploadService
	log           *zap.Logger
}

func New(db *gorm.DB, uploads service.UploadService, log *zap.Logger) *Handler {
	return &Handler{
		announcements: repository.NewStore[domain.Announcement](db, log),
		clients:       repository.NewStore[domain.Client](db, log),
		products:      repository.NewProductStore(db, log),
		uploads:       uploads,
		log:           log,
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

func parseOptionalID(raw string) *int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// uploadMessage flattens gateway errors into the response message.
func uploadMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTooLarge):
		return "File too large"
	case errors.Is(err, service.ErrInvalidType):
		return "Only .png, .jpg and .jpeg format allowed"
	default:
		return "Error uploading file"
	}
}
