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

func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
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
	page, err := service.NewSubscriptionService(ctx, infra.Deps).ListChannelSubscribers(userId, channelVar.ChannelId, channelVar.Page, channelVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Subscribers fetched successfully"), page)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var subscriberVar SubscriberParam
	if err := c.BindAndValidate(&subscriberVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	page, err := service.NewSubscriptionService(ctx, infra.Deps).ListSubscribedChannels(userId, subscriberVar.SubscriberId, subscriberVar.Page, subscriberVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Subscribed channels fetched successfully"), page)
}
