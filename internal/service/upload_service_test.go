package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fanxi-showcase/internal/config"
)

func buildMultipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart failed: %v", err)
	}
	_, header, err := req.FormFile(field)
	if err != nil {
		t.Fatalf("form file failed: %v", err)
	}
	return header
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png failed: %v", err)
	}
	return buf.Bytes()
}

func newTestUploadService(t *testing.T, mutate func(*config.UploadConfig)) *UploadService {
	t.Helper()
	cfg := config.UploadConfig{
		Dir:               t.TempDir(),
		URLPrefix:         "/uploads",
		MaxSize:           1 << 20,
		AllowedTypes:      []string{"image/png", "image/jpeg", "image/webp"},
		AllowedExtensions: []string{".png", "jpg", ".webp"},
		MaxWidth:          100,
		MaxHeight:         100,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	svc := NewUploadService(cfg)
	svc.now = func() time.Time { return time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestUploadSaveAndRemove(t *testing.T) {
	svc := newTestUploadService(t, nil)
	file := buildMultipartFile(t, "file", "photo.PNG", encodePNG(t, 20, 10))

	result, err := svc.SaveFile(file, "Background")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if !strings.HasPrefix(result.URL, "/uploads/background/2026/03/") || !strings.HasSuffix(result.URL, ".png") {
		t.Fatalf("unexpected url %q", result.URL)
	}
	if result.Width != 20 || result.Height != 10 || result.ContentType != "image/png" {
		t.Fatalf("unexpected result: %+v", result)
	}
	local := filepath.Join(svc.Dir(), "background", "2026", "03", result.Filename)
	if _, err := os.Stat(local); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	if err := svc.Remove(result.URL); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(local); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file should be removed, stat err=%v", err)
	}
	if err := svc.Remove(result.URL); err != nil {
		t.Fatalf("removing twice must be a no-op: %v", err)
	}
}

func TestUploadRejections(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*config.UploadConfig)
		filename string
		content  func(t *testing.T) []byte
		want     error
	}{
		{name: "too large", mutate: func(c *config.UploadConfig) { c.MaxSize = 10 }, filename: "a.png", content: func(t *testing.T) []byte { return encodePNG(t, 5, 5) }, want: ErrUploadTooLarge},
		{name: "bad extension", filename: "a.gif", content: func(t *testing.T) []byte { return encodePNG(t, 5, 5) }, want: ErrUploadTypeInvalid},
		{name: "not an image", filename: "a.png", content: func(*testing.T) []byte { return []byte("plain text body") }, want: ErrUploadTypeInvalid},
		{name: "too wide", filename: "a.png", content: func(t *testing.T) []byte { return encodePNG(t, 200, 5) }, want: ErrUploadDimensionInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestUploadService(t, tc.mutate)
			file := buildMultipartFile(t, "file", tc.filename, tc.content(t))
			if _, err := svc.SaveFile(file, "product"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUploadRemoveIgnoresForeignPaths(t *testing.T) {
	svc := newTestUploadService(t, nil)
	outside := filepath.Join(filepath.Dir(svc.Dir()), "keep.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("write outside file failed: %v", err)
	}

	for _, url := range []string{"https://cdn.example.com/a.png", "/static/a.png", "/uploads/../keep.txt", ""} {
		if err := svc.Remove(url); err != nil {
			t.Fatalf("remove %q failed: %v", url, err)
		}
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside upload dir must survive: %v", err)
	}
}

func TestDecodeImageDimensionsWebP(t *testing.T) {
	// RIFF 头 + 无损 VP8L 块，宽 3 高 2
	bits := uint32(3-1) | uint32(2-1)<<14
	data := []byte{0x2f, byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
	chunk := append([]byte("VP8L"), byte(len(data)), 0, 0, 0)
	chunk = append(chunk, data...)
	chunk = append(chunk, 0)
	riff := append([]byte("RIFF"), byte(4+len(chunk)), 0, 0, 0)
	riff = append(riff, []byte("WEBP")...)
	riff = append(riff, chunk...)

	width, height, err := decodeImageDimensions(bytes.NewReader(riff))
	if err != nil {
		t.Fatalf("decode webp failed: %v", err)
	}
	if width != 3 || height != 2 {
		t.Fatalf("want 3x2 got %dx%d", width, height)
	}
}
