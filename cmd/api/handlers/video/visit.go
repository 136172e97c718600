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

// GetVideo 返回视频详情, 同时记一次播放和观看历史
func GetVideo(ctx context.Context, c *app.RequestContext) {
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
	detail, err := service.NewVideoService(ctx, infra.Deps).GetVideo(userId, idVar.VideoId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video fetched successfully"), detail)
}
