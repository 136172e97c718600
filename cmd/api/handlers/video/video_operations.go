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

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var updateVar UpdateVideoParam
	if err := c.Bind(&updateVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	// 封面可选
	thumbnailPath, err := pack.SaveUpload(c, "thumbnail")
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	video, err := service.NewVideoService(ctx, infra.Deps).UpdateVideo(&service.UpdateVideoRequest{
		Principal:     userId,
		VideoId:       updateVar.VideoId,
		Title:         updateVar.Title,
		Description:   updateVar.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video updated successfully"), video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var idVar VideoIdParam
	if err := c.BindAndValidate(&idVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewVideoService(ctx, infra.Deps).DeleteVideo(userId, idVar.VideoId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video deleted successfully"), map[string]interface{}{})
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	var idVar VideoIdParam
	if err := c.BindAndValidate(&idVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	video, err := service.NewVideoService(ctx, infra.Deps).TogglePublishStatus(userId, idVar.VideoId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Publish status toggled successfully"), video)
}
