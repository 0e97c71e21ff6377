package handler_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/handler"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/storage"
)

type stubImageHost struct {
	uploads    int
	deletes    int
	failDelete bool
}

var _ storage.ImageHost = (*stubImageHost)(nil)

func (s *stubImageHost) Upload(data []byte, filename string) (*storage.HostedImage, error) {
	s.uploads++
	return &storage.HostedImage{
		ID:        "img-1",
		URL:       "https://cdn.example.com/img-1.jpg",
		DeleteURL: "https://cdn.example.com/delete/img-1",
	}, nil
}

func (s *stubImageHost) Delete(deleteURL string) error {
	s.deletes++
	if s.failDelete {
		return fmt.Errorf("host down")
	}
	return nil
}

type stubStorySaver struct{}

func (stubStorySaver) Save(src io.Reader, originalName string) (string, error) {
	return "/uploads/stories/generated.jpg", nil
}

// newUploadApp mirrors the server's body limit so the service-level size
// ceilings are the ones that decide.
func newUploadApp(host *stubImageHost) *fiber.App {
	uploadHandler := handler.NewUploadHandler(service.NewUploadService(host, nil, stubStorySaver{}, zap.NewNop()))

	app := fiber.New(fiber.Config{
		BodyLimit: service.MaxHostedUploadSize + 1<<20,
	})
	app.Post("/api/upload", uploadHandler.UploadImage)
	app.Delete("/api/upload", uploadHandler.DeleteImage)
	return app
}

func multipartImageRequest(t *testing.T, target, filename, contentType string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// An image between the old 4MB edge default and the 10MB ceiling must reach
// the image host instead of dying at the transport.
func TestUploadImageAcceptsMidSizeFile(t *testing.T) {
	host := &stubImageHost{}
	app := newUploadApp(host)

	req := multipartImageRequest(t, "/api/upload", "beach.jpg", "image/jpeg", 6*1024*1024)
	resp, err := app.Test(req, 10_000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, host.uploads)
}

func TestUploadImageOversizeRejectedByService(t *testing.T) {
	host := &stubImageHost{}
	app := newUploadApp(host)

	req := multipartImageRequest(t, "/api/upload", "huge.jpg", "image/jpeg", service.MaxHostedUploadSize+1)
	resp, err := app.Test(req, 10_000)
	require.NoError(t, err)

	// The edge admits the body; the size ceiling rejects it with a 400
	// envelope before the host is called.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, host.uploads)
}

func TestDeleteImage(t *testing.T) {
	host := &stubImageHost{}
	app := newUploadApp(host)

	req := jsonRequest(t, http.MethodDelete, "/api/upload", fiber.Map{
		"delete_url": "https://cdn.example.com/delete/img-1",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, host.deletes)
}

func TestDeleteImageHostFailureStillSucceeds(t *testing.T) {
	host := &stubImageHost{failDelete: true}
	app := newUploadApp(host)

	req := jsonRequest(t, http.MethodDelete, "/api/upload", fiber.Map{
		"delete_url": "https://cdn.example.com/delete/img-1",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteImageRequiresURL(t *testing.T) {
	app := newUploadApp(&stubImageHost{})

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/upload", fiber.Map{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
