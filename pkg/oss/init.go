package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type Config struct {
	Endpoint    string
	AccessKey   string
	SecretKey   string
	UseSSL      bool
	PublicURL   string
	ImageBucket string
	VideoBucket string
}

// NewMediaStore 未配置 endpoint 时返回一个总是失败的实现, 上传会得到 UpstreamFailure
func NewMediaStore(cfg Config) (MediaStore, error) {
	if cfg.Endpoint == "" {
		hlog.Warn("MinIO endpoint is empty, media uploads are disabled")
		return Unavailable{}, nil
	}
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", cfg.Endpoint, cfg.AccessKey)

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	hlog.Info("Connect Minio Success")
	return NewMinioStore(minioClient, cfg), nil
}
