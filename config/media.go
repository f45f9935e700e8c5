package config

const (
	MediaDriverMinio = "minio"
	MediaDriverOss   = "oss"
)

// Media selects the object store that holds post images.
type Media struct {
	Driver string `json:"driver" yaml:"driver"`
	// UploadExpire presigned PUT lifetime in seconds
	UploadExpire int64 `json:"upload_expire" yaml:"upload_expire"`
	// PublicBaseURL is the CDN/bucket origin that serves stored objects, e.g. https://cdn.example.com
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

type MinioConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	UseSSL          bool   `json:"use_ssl" yaml:"use_ssl"`
	Region          string `json:"region" yaml:"region"`
}
