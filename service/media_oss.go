package service

import (
	"context"
	"time"

	"Spotlight/config"
	ossclient "Spotlight/pkg/oss"
	"Spotlight/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var _ MediaStore = (*OssStore)(nil)

type OssStore struct {
	Client     *oss.Client
	BucketName string
	Media      *config.Media
}

func NewOssStore(cfg *config.OssConfig, media *config.Media) *OssStore {
	return &OssStore{
		Client:     ossclient.NewAliyunClient(cfg),
		BucketName: cfg.Bucket,
		Media:      media,
	}
}

// GenerateUploadURL 生成预签名直传地址
func (s *OssStore) GenerateUploadURL(ctx context.Context) (*types.UploadURLResponse, error) {
	now := time.Now()
	storageID := newStorageID(now)
	expire := uploadExpire(s.Media)

	result, err := s.Client.Presign(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(storageID),
	}, oss.PresignExpires(expire))
	if err != nil {
		return nil, err
	}

	return &types.UploadURLResponse{
		UploadURL: result.URL,
		StorageID: storageID,
		ExpiresAt: result.Expiration,
	}, nil
}

func (s *OssStore) ResolveURL(ctx context.Context, storageID string) (string, error) {
	if !validStorageID(storageID) {
		return "", nil
	}

	exist, err := s.Client.IsObjectExist(ctx, s.BucketName, storageID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", nil
	}

	return publicURL(s.Media.PublicBaseURL, storageID), nil
}
