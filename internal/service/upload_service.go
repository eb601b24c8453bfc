package service

import (
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const (
	defaultUploadDir       = "uploads"
	defaultUploadURLPrefix = "/uploads"
)

var uploadScenes = map[string]struct{}{
	constants.UploadSceneProduct:    {},
	constants.UploadSceneCategory:   {},
	constants.UploadSceneBackground: {},
	constants.UploadSceneContent:    {},
	constants.UploadSceneCommon:     {},
}

// UploadResult 上传结果
type UploadResult struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// UploadService 图片上传服务
type UploadService struct {
	cfg config.UploadConfig
	now func() time.Time
}

// NewUploadService 创建上传服务
func NewUploadService(cfg config.UploadConfig) *UploadService {
	if strings.TrimSpace(cfg.Dir) == "" {
		cfg.Dir = defaultUploadDir
	}
	cfg.URLPrefix = "/" + strings.Trim(strings.TrimSpace(cfg.URLPrefix), "/")
	if cfg.URLPrefix == "/" {
		cfg.URLPrefix = defaultUploadURLPrefix
	}
	return &UploadService{cfg: cfg, now: time.Now}
}

// Dir 上传文件根目录
func (s *UploadService) Dir() string {
	return s.cfg.Dir
}

// URLPrefix 上传文件访问前缀
func (s *UploadService) URLPrefix() string {
	return s.cfg.URLPrefix
}

// SaveFile 校验并保存上传图片，返回可访问的相对 URL
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (*UploadResult, error) {
	if file == nil {
		return nil, ErrInvalidInput
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrUploadTooLarge, file.Size, s.cfg.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 && (ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions)) {
		return nil, fmt.Errorf("%w: extension %q", ErrUploadTypeInvalid, ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType, err := sniffContentType(src)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") || !isAllowedContentType(contentType, s.cfg.AllowedTypes) {
		return nil, fmt.Errorf("%w: %s", ErrUploadTypeInvalid, contentType)
	}

	width, height, err := decodeImageDimensions(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadTypeInvalid, err)
	}
	if (s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && height > s.cfg.MaxHeight) {
		return nil, fmt.Errorf("%w: %dx%d", ErrUploadDimensionInvalid, width, height)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	now := s.now()
	relDir := path.Join(normalizeUploadScene(scene), now.Format("2006"), now.Format("01"))
	filename := uuid.New().String() + ext
	saveDir := filepath.Join(s.cfg.Dir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return nil, err
	}

	dst, err := os.Create(filepath.Join(saveDir, filename))
	if err != nil {
		return nil, err
	}
	written, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		return nil, copyErr
	}
	if closeErr != nil {
		return nil, closeErr
	}

	return &UploadResult{
		URL:         s.cfg.URLPrefix + "/" + path.Join(relDir, filename),
		Filename:    filename,
		Size:        written,
		ContentType: contentType,
		Width:       width,
		Height:      height,
	}, nil
}

// Remove 删除本地上传文件，外部地址或已不存在的文件直接忽略
func (s *UploadService) Remove(url string) error {
	localPath, ok := s.localPath(url)
	if !ok {
		return nil
	}
	if err := os.Remove(localPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logger.Infow("upload_file_removed", "url", url)
	return nil
}

// localPath 将 URL 映射为上传目录下的本地路径，拒绝目录穿越
func (s *UploadService) localPath(url string) (string, bool) {
	url = strings.TrimSpace(url)
	prefix := s.cfg.URLPrefix + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	rel := path.Clean("/" + strings.TrimPrefix(url, prefix))
	if rel == "/" {
		return "", false
	}
	return filepath.Join(s.cfg.Dir, filepath.FromSlash(strings.TrimPrefix(rel, "/"))), true
}

func sniffContentType(src io.ReadSeeker) (string, error) {
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

func isAllowedContentType(contentType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, item := range allowed {
		if strings.EqualFold(contentType, strings.TrimSpace(item)) {
			return true
		}
	}
	return false
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := uploadScenes[value]; ok {
		return value
	}
	return constants.UploadSceneCommon
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if ext == normalized {
			return true
		}
	}
	return false
}

func decodeImageDimensions(src io.ReadSeeker) (int, int, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
