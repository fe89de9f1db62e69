package utils

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/skulk0156/EMS-backend/config"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveProfileImage 把上传的头像写入上传目录，文件名使用 UUID 防止互相覆盖，
// 返回可供前端访问的相对路径。
func SaveProfileImage(c *app.RequestContext, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedImageType
	}

	maxSize := int64(config.Cfg.UploadMaxSizeMB) << 20
	if file.Size > maxSize {
		return "", errors.New("file exceeds maximum upload size")
	}

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(config.Cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join(config.Cfg.UploadDir, name)), nil
}
