package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveAllRemovesStagedOnFailure 缩略图保存失败时, 已暂存的视频文件被删除
func TestSaveAllRemovesStagedOnFailure(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "clip.mp4")

	paths, err := saveAll([]string{"videoFile", "thumbnail"}, func(field string) (string, error) {
		if field == "thumbnail" {
			return "", errors.New("disk full")
		}
		return videoPath, os.WriteFile(videoPath, []byte("video"), 0o644)
	})
	assert.Error(t, err)
	assert.Nil(t, paths)
	_, statErr := os.Stat(videoPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveAllKeepsMissingFields(t *testing.T) {
	paths, err := saveAll([]string{"videoFile", "thumbnail"}, func(field string) (string, error) {
		if field == "thumbnail" {
			return "", nil
		}
		return "/tmp/clip.mp4", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/clip.mp4", ""}, paths)
}
