package utils

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration 通过 ffprobe 读取媒体时长, 单位秒
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe the media")
	}
	duration := gjson.Get(out, "format.duration")
	if !duration.Exists() {
		return 0, errors.Errorf("no duration in probe output of %s", path)
	}
	return duration.Float(), nil
}
