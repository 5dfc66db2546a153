package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sajid-inmogr/admin-backend/internal/config"
	"github.com/sajid-inmogr/admin-backend/internal/repository"
	"github.com/sajid-inmogr/admin-backend/pkg/imaging"
)

var (
	// ErrNoFile signals the request carried no file under the expected
	// field. Operations with an optional upload treat it as "keep the
	// current asset"; create treats it as failure.
	ErrNoFile = errors.New("no file in request")

	ErrInvalidType = errors.New("only .png, .jpg and .jpeg format allowed")
	ErrTooLarge    = errors.New("file too large")
)

// StoredFile describes an asset persisted to the remote store: the link
// saved on the entity and the opaque key used to delete the asset later.
type StoredFile struct {
	Link    string
	AssetID string
}

// UploadService is the gateway between multipart requests and the
// object store.
type UploadService interface {
	// Receive extracts, validates and uploads the file under field.
	// Returns ErrNoFile when the request has no such file.
	Receive(ctx context.Context, r *http.Request, field string) (*StoredFile, error)
	// Discard deletes a stored asset best-effort: failures are logged
	// and never surfaced, so callers must tolerate orphaned assets.
	Discard(assetID string)
}

type uploadService struct {
	storage repository.ObjectStorage
	cfg     *config.Config
	log     *zap.Logger
	allowed map[string]bool
}

func NewUploadService(storage repository.ObjectStorage, cfg *config.Config, log *zap.Logger) UploadService {
	allowed := make(map[string]bool, len(cfg.App.AllowedTypes))
	for _, t := range cfg.App.AllowedTypes {
		allowed[strings.ToLower(t)] = true
	}
	return &uploadService{
		storage: storage,
		cfg:     cfg,
		log:     log,
		allowed: allowed,
	}
}

func (s *uploadService) Receive(ctx context.Context, r *http.Request, field string) (*StoredFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	defer file.Close()

	if header.Size > s.cfg.App.MaxUploadSize {
		return nil, ErrTooLarge
	}

	contentType := s.contentType(header)
	if !s.allowed[contentType] || !imaging.Allowed(contentType) {
		return nil, ErrInvalidType
	}

	buf, err := io.ReadAll(io.LimitReader(file, s.cfg.App.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(buf)) > s.cfg.App.MaxUploadSize {
		return nil, ErrTooLarge
	}

	if err := imaging.Verify(buf, contentType); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, err)
	}

	key := s.cfg.Storage.Folder + "/" + uuid.New().String() + imaging.Ext(contentType)
	reader := bytes.NewReader(buf)

	if err := s.storage.Put(ctx, key, reader, int64(len(buf)), contentType); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	stored := &StoredFile{
		Link:    s.link(key),
		AssetID: key,
	}

	s.log.Info("File uploaded",
		zap.String("asset_id", stored.AssetID),
		zap.String("original_name", header.Filename),
		zap.Int("size", len(buf)))

	return stored, nil
}

func (s *uploadService) Discard(assetID string) {
	if assetID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.storage.Delete(ctx, assetID); err != nil {
		s.log.Warn("Failed to discard asset, leaving orphan",
			zap.String("asset_id", assetID),
			zap.Error(err))
	}
}

func (s *uploadService) contentType(header *multipart.FileHeader) string {
	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if contentType != "" {
		return contentType
	}
	if filepath.Ext(header.Filename) == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}

func (s *uploadService) link(key string) string {
	base := strings.TrimSuffix(s.cfg.Storage.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimSuffix(s.cfg.Storage.Endpoint, "/") + "/" + s.cfg.Storage.BucketName
	}
	return base + "/" + key
}
