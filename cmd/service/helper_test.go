package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/dal/memdb"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
)

// fakeMedia 记录上传和删除, failKind 对应的上传会失败
type fakeMedia struct {
	mu       sync.Mutex
	failKind string
	uploaded []string
	deleted  []string
}

func (f *fakeMedia) Upload(ctx context.Context, localPath, kind string) (*oss.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if kind == f.failKind {
		return nil, errors.New("upstream unavailable")
	}
	id := kind + "/" + uuid.NewString()
	f.uploaded = append(f.uploaded, id)
	obj := &oss.Object{PublicId: id, Url: "http://media.local/" + id}
	if kind == constants.MediaKindVideo {
		obj.Duration = 12.5
	}
	return obj, nil
}

func (f *fakeMedia) Delete(ctx context.Context, publicId, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicId)
	return nil
}

func newTestDeps() (*Deps, *memdb.Store, *fakeMedia) {
	store := memdb.New()
	media := &fakeMedia{}
	deps := (&Deps{Store: store, Media: media}).WithDefaults()
	return deps, store, media
}

func seedUser(t *testing.T, store *memdb.Store, name string) *model.User {
	t.Helper()
	u := &model.User{
		Id:       uuid.NewString(),
		UserName: name,
		FullName: name + " full",
		Email:    name + "@example.com",
		Avatar:   model.MediaRef{Url: "http://media.local/" + name + ".png"},
	}
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func seedVideo(t *testing.T, store *memdb.Store, ownerId, title string, published bool) *model.Video {
	t.Helper()
	v := &model.Video{
		Id:          uuid.NewString(),
		VideoFile:   model.MediaRef{PublicId: "video/" + title, Url: "http://media.local/video/" + title},
		Thumbnail:   model.MediaRef{PublicId: "image/" + title, Url: "http://media.local/image/" + title},
		Title:       title,
		Description: "about " + title,
		Duration:    30,
		IsPublished: published,
		OwnerId:     ownerId,
	}
	require.NoError(t, store.CreateVideo(context.Background(), v))
	return v
}

// stage 创建一个模拟上传暂存的本地文件
func stage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	return path
}

func errCode(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}
