package oss

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

const location = "us-east-1" // MinIO默认区域

// Object 是上传完成后的对象信息, PublicId 用于之后删除
type Object struct {
	PublicId string
	Url      string
	// Duration 仅对视频有效, 单位秒
	Duration float64
}

// MediaStore 把本地暂存文件上传到对象存储
// Upload 无论成功与否都会删除本地文件
type MediaStore interface {
	Upload(ctx context.Context, localPath, kind string) (*Object, error)
	Delete(ctx context.Context, publicId, kind string) error
}

type MinioStore struct {
	client *minio.Client
	cfg    Config
}

func NewMinioStore(client *minio.Client, cfg Config) *MinioStore {
	return &MinioStore{client: client, cfg: cfg}
}

func (m *MinioStore) bucket(kind string) string {
	if kind == constants.MediaKindVideo {
		return m.cfg.VideoBucket
	}
	return m.cfg.ImageBucket
}

// 检查存储桶是否存在，不存在则创建
func (m *MinioStore) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrap(err, "check bucket error")
	}
	if !exists {
		if err = m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return errors.Wrap(err, "create bucket error")
		}
	}
	return nil
}

func (m *MinioStore) Upload(ctx context.Context, localPath, kind string) (*Object, error) {
	defer removeLocal(localPath)
	if localPath == "" {
		return nil, errors.New("local path is empty")
	}

	bucketName := m.bucket(kind)
	if err := m.ensureBucket(ctx, bucketName); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	objectName := kind + "/" + uuid.NewString() + ext
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	obj := &Object{PublicId: objectName}
	if kind == constants.MediaKindVideo {
		duration, err := utils.ProbeDuration(localPath)
		if err != nil {
			hlog.CtxWarnf(ctx, "probe duration of %s failed:%v", localPath, err)
		}
		obj.Duration = duration
	}

	if _, err := m.client.FPutObject(ctx, bucketName, objectName, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(err, "upload %s failed", objectName)
	}
	obj.Url = fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.cfg.PublicURL, "/"), bucketName, objectName)
	return obj, nil
}

func (m *MinioStore) Delete(ctx context.Context, publicId, kind string) error {
	if publicId == "" {
		return nil
	}
	err := m.client.RemoveObject(ctx, m.bucket(kind), publicId, minio.RemoveObjectOptions{})
	return errors.Wrapf(err, "remove %s failed", publicId)
}

// Unavailable 在未配置对象存储时使用
type Unavailable struct{}

func (Unavailable) Upload(ctx context.Context, localPath, kind string) (*Object, error) {
	removeLocal(localPath)
	return nil, errors.New("object storage is not configured")
}

func (Unavailable) Delete(ctx context.Context, publicId, kind string) error {
	return nil
}

func removeLocal(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		hlog.Warnf("remove staged file %s failed:%v", path, err)
	}
}
