package service

import (
	"context"
	"net/http"
	"time"

	"Spotlight/config"
	ossclient "Spotlight/pkg/oss"
	"Spotlight/types"

	"github.com/minio/minio-go/v7"
)

var _ MediaStore = (*MinioStore)(nil)

type MinioStore struct {
	Client     *minio.Client
	BucketName string
	Media      *config.Media
}

func NewMinioStore(cfg *config.MinioConfig, media *config.Media) (*MinioStore, error) {
	client, err := ossclient.NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	return &MinioStore{
		Client:     client,
		BucketName: cfg.Bucket,
		Media:      media,
	}, nil
}

func (s *MinioStore) GenerateUploadURL(ctx context.Context) (*types.UploadURLResponse, error) {
	now := time.Now()
	storageID := newStorageID(now)
	expire := uploadExpire(s.Media)

	u, err := s.Client.PresignedPutObject(ctx, s.BucketName, storageID, expire)
	if err != nil {
		return nil, err
	}

	return &types.UploadURLResponse{
		UploadURL: u.String(),
		StorageID: storageID,
		ExpiresAt: now.Add(expire),
	}, nil
}

func (s *MinioStore) ResolveURL(ctx context.Context, storageID string) (string, error) {
	if !validStorageID(storageID) {
		return "", nil
	}

	_, err := s.Client.StatObject(ctx, s.BucketName, storageID, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", err
	}

	return publicURL(s.Media.PublicBaseURL, storageID), nil
}
