package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))

	wrapped := errors.Wrap(NotFound.WithMessage("Video not found"), "get video")
	got := ConvertErr(wrapped)
	assert.EqualValues(t, NotFoundCode, got.ErrCode)
	assert.Equal(t, "Video not found", got.ErrMsg)

	got = ConvertErr(errors.New("boom"))
	assert.EqualValues(t, ServiceErrCode, got.ErrCode)
	assert.Equal(t, "boom", got.ErrMsg)
}

func TestIsComparesCode(t *testing.T) {
	err := errors.WithMessage(Forbidden.WithMessage("not yours"), "update video")
	assert.True(t, errors.Is(err, Forbidden))
	assert.False(t, errors.Is(err, NotFound))
}
