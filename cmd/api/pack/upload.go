package pack

import (
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UploadDir 是上传文件的暂存目录, 为空时使用系统临时目录
var UploadDir string

// SaveUpload 把 multipart 字段 field 暂存到本地, 字段不存在时返回空路径
func SaveUpload(c *app.RequestContext, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return "", nil
	}
	dir := UploadDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create upload dir %s failed", dir)
	}
	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
	if err = c.SaveUploadedFile(file, path); err != nil {
		return "", errors.Wrapf(err, "save upload %s failed", field)
	}
	return path, nil
}

// SaveUploads 按顺序暂存多个字段, 任一字段失败时删除已暂存的文件
func SaveUploads(c *app.RequestContext, fields ...string) ([]string, error) {
	return saveAll(fields, func(field string) (string, error) {
		return SaveUpload(c, field)
	})
}

func saveAll(fields []string, save func(field string) (string, error)) ([]string, error) {
	paths := make([]string, 0, len(fields))
	for _, field := range fields {
		path, err := save(field)
		if err != nil {
			RemoveStaged(paths...)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RemoveStaged 删除暂存文件, 空路径和已不存在的文件忽略
func RemoveStaged(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			hlog.Warnf("remove staged file %s failed:%v", p, err)
		}
	}
}
