package oss

import (
	"fmt"

	"Spotlight/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/minio/minio-go/v7"
	miniocred "github.com/minio/minio-go/v7/pkg/credentials"
)

// NewAliyunClient 未配置 ak/sk 时从 OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET 读取
func NewAliyunClient(conf *config.OssConfig) *oss.Client {
	var provider credentials.CredentialsProvider
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}

	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).WithRegion(conf.Region)
	return oss.NewClient(cfg)
}

// NewMinioClient S3 兼容存储，本地开发使用 minio
func NewMinioClient(conf *config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  miniocred.NewStaticV4(conf.AccessKeyID, conf.AccessKeySecret, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	return client, nil
}
