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

func ListComment(ctx context.Context, c *app.RequestContext) {
	var listVar ListCommentParam
	if err := c.BindAndValidate(&listVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	page, err := service.NewCommentService(ctx, infra.Deps).ListVideoComments(userId, listVar.VideoId, listVar.Page, listVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comments fetched successfully"), page)
}
