package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"Spotlight/config"
	"Spotlight/types"

	"github.com/google/uuid"
)

// MediaStore 对象存储，客户端通过预签名地址直传图片
type MediaStore interface {
	// GenerateUploadURL returns a presigned PUT target and the storage id it will hold.
	GenerateUploadURL(ctx context.Context) (*types.UploadURLResponse, error)
	// ResolveURL returns the public URL of a stored object, or "" when nothing is stored under storageID.
	ResolveURL(ctx context.Context, storageID string) (string, error)
}

func NewMediaStore(cfg *config.Config) (MediaStore, error) {
	switch cfg.Media.Driver {
	case config.MediaDriverMinio:
		store, err := NewMinioStore(cfg.Minio, cfg.Media)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.MediaDriverOss:
		return NewOssStore(cfg.Oss, cfg.Media), nil
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Media.Driver)
	}
}

const mediaKeyPrefix = "posts/"

// newStorageID posts/2025/01/02/<uuid>
func newStorageID(now time.Time) string {
	return mediaKeyPrefix + now.Format("2006/01/02") + "/" + uuid.NewString()
}

// validStorageID 只接受本服务签发格式的 key
func validStorageID(storageID string) bool {
	if !strings.HasPrefix(storageID, mediaKeyPrefix) || strings.Contains(storageID, "..") {
		return false
	}
	return path.Clean(storageID) == storageID
}

func publicURL(base, storageID string) string {
	return strings.TrimRight(base, "/") + "/" + storageID
}

func uploadExpire(cfg *config.Media) time.Duration {
	return time.Duration(cfg.UploadExpire) * time.Second
}
