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

// ToggleSubscription 订阅或取消订阅一个频道
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
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
	status, err := service.NewSubscriptionService(ctx, infra.Deps).ToggleSubscription(userId, channelVar.ChannelId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Subscription toggled successfully"), status)
}
