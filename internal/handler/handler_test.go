package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sajid-inmogr/admin-backend/internal/auth"
	"github.com/sajid-inmogr/admin-backend/internal/config"
	"github.com/sajid-inmogr/admin-backend/internal/domain"
	"github.com/sajid-inmogr/admin-backend/internal/handler"
	"github.com/sajid-inmogr/admin-backend/internal/server"
	"github.com/sajid-inmogr/admin-backend/internal/service"
)

const testSecret = "handler-test-secret"

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deletes []string
}

func (f *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, key)
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) deleteCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, k := range f.deletes {
		if k == key {
			n++
		}
	}
	return n
}

type env struct {
	router  *gin.Engine
	db      *gorm.DB
	storage *fakeStorage
	token   string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Models()...))

	storage := &fakeStorage{objects: make(map[string][]byte)}
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Folder:        "uploads",
			PublicBaseURL: "https://cdn.example.com",
		},
		App: config.AppConfig{
			MaxUploadSize: 5 * 1024 * 1024,
			AllowedTypes:  []string{"image/jpeg", "image/jpg", "image/png"},
		},
	}

	uploads := service.NewUploadService(storage, cfg, zap.NewNop())
	h := handler.New(db, uploads, zap.NewNop())
	router := server.NewRouter(h, testSecret, zap.NewNop())

	token, err := auth.Sign(testSecret, "1", auth.AdminRole, time.Hour)
	require.NoError(t, err)

	return &env{router: router, db: db, storage: storage, token: token}
}

type file struct {
	name        string
	contentType string
	data        []byte
}

func pngFile(t *testing.T, name string) *file {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return &file{name: name, contentType: "image/png", data: buf.Bytes()}
}

func jpegFile(t *testing.T, name string) *file {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil))
	return &file{name: name, contentType: "image/jpeg", data: buf.Bytes()}
}

func multipartBody(t *testing.T, fields map[string]string, f *file) (io.Reader, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if f != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func (e *env) do(t *testing.T, method, path string, body io.Reader, contentType string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func result(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	res, ok := decode(t, rec)["result"].(map[string]any)
	require.True(t, ok, "response has no result object")
	return res
}
