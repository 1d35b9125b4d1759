// Package media 校验领袖照片等以 data URI 保存的图片。
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// MaxPhotoBytes 是解码后图片允许的最大体积
const MaxPhotoBytes = 2 << 20

var (
	ErrInvalidDataURL  = errors.New("invalid image data url")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image too large")
)

var allowedMimes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

// Photo 是解析后的图片信息
type Photo struct {
	Mime   string
	Format string
	Width  int
	Height int
	Data   []byte
}

// ParseDataURL 解析 data:<mime>;base64,<payload> 并确认内容确实是受支持的图片
func ParseDataURL(value string, maxBytes int) (Photo, error) {
	raw := strings.TrimSpace(value)
	if !strings.HasPrefix(raw, "data:") {
		return Photo{}, fmt.Errorf("%w: missing data prefix", ErrInvalidDataURL)
	}
	comma := strings.Index(raw, ",")
	if comma <= len("data:") {
		return Photo{}, fmt.Errorf("%w: missing payload", ErrInvalidDataURL)
	}

	meta := raw[len("data:"):comma]
	if !strings.HasSuffix(strings.ToLower(meta), ";base64") {
		return Photo{}, fmt.Errorf("%w: payload must be base64", ErrInvalidDataURL)
	}
	mime := strings.ToLower(strings.TrimSpace(meta[:len(meta)-len(";base64")]))
	if !allowed(mime) {
		return Photo{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	decoded, err := base64.StdEncoding.DecodeString(raw[comma+1:])
	if err != nil || len(decoded) == 0 {
		return Photo{}, fmt.Errorf("%w: cannot decode payload", ErrInvalidDataURL)
	}
	if maxBytes > 0 && len(decoded) > maxBytes {
		return Photo{}, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(decoded))
	if err != nil {
		return Photo{}, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if "image/"+format != mime {
		return Photo{}, fmt.Errorf("%w: declared %s but content is %s", ErrInvalidDataURL, mime, format)
	}

	return Photo{Mime: mime, Format: format, Width: cfg.Width, Height: cfg.Height, Data: decoded}, nil
}

// ValidatePhoto 校验领袖照片，空字符串表示没有照片
func ValidatePhoto(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	_, err := ParseDataURL(value, MaxPhotoBytes)
	return err
}

// EncodeDataURL 将图片内容编码为 data URI，内容必须是受支持的图片
func EncodeDataURL(data []byte) (string, error) {
	if len(data) > MaxPhotoBytes {
		return "", ErrTooLarge
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	mime := "image/" + format
	if !allowed(mime) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func allowed(mime string) bool {
	for _, candidate := range allowedMimes {
		if candidate == mime {
			return true
		}
	}
	return false
}
