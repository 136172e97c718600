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

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var listVar VideoListParam
	if err := c.BindAndValidate(&listVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	page, err := service.NewVideoService(ctx, infra.Deps).ListVideos(&service.ListVideosRequest{
		Principal: userId,
		Page:      listVar.Page,
		Limit:     listVar.Limit,
		Query:     listVar.Query,
		SortBy:    listVar.SortBy,
		SortType:  listVar.SortType,
		UserId:    listVar.UserId,
	})
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Videos fetched successfully"), page)
}
