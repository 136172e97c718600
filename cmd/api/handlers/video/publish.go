package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

// PublishVideo 接收 multipart 表单: title, description, videoFile, thumbnail
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var publishVar PublishVideoParam
	if err := c.Bind(&publishVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	paths, err := pack.SaveUploads(c, "videoFile", "thumbnail")
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	videoPath, thumbnailPath := paths[0], paths[1]

	video, err := service.NewVideoService(ctx, infra.Deps).PublishVideo(&service.PublishVideoRequest{
		Principal:     userId,
		Title:         publishVar.Title,
		Description:   publishVar.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Video published successfully"), video)
}
