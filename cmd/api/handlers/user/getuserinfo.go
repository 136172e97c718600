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

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	user, err := service.NewUserService(ctx, infra.Deps).CurrentUser(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Current user fetched successfully"), user)
}

func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	var channelVar ChannelParam
	if err := c.BindAndValidate(&channelVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	profile, err := service.NewUserService(ctx, infra.Deps).ChannelProfile(userId, channelVar.UserName)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("User channel fetched successfully"), profile)
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	history, err := service.NewUserService(ctx, infra.Deps).WatchHistory(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Watch history fetched successfully"), history)
}
