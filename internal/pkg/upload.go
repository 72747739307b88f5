package pkg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// MaxUploadSize 单张图片上限 20MB
	MaxUploadSize = 20 << 20

	UploadDir       = "uploads"
	UploadURLPrefix = "/uploads"
)

var (
	ErrUploadTooLarge = errors.New("file exceeds the 20MB limit")
	ErrUploadNotImage = errors.New("only images are allowed")
)

// SaveImage 保存 multipart 表单里的图片，返回可访问的 /uploads 路径。
// 字段不存在时返回空串且无错误，由调用方决定是否必填。
func SaveImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	if file.Size > MaxUploadSize {
		return "", ErrUploadTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrUploadNotImage
	}

	suffix, err := RandSuffix(8)
	if err != nil {
		return "", err
	}
	// 文件名：字段-毫秒时间戳-随机串.扩展名
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), suffix, filepath.Ext(file.Filename))

	if err := c.SaveUploadedFile(file, filepath.Join(UploadDir, name)); err != nil {
		return "", err
	}
	return UploadURLPrefix + "/" + name, nil
}
