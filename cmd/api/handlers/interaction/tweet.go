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

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var tweetVar CreateTweetParam
	if err := c.Bind(&tweetVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx, infra.Deps).CreateTweet(userId, tweetVar.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Tweet created successfully"), tweet)
}

func ListUserTweets(ctx context.Context, c *app.RequestContext) {
	var listVar UserTweetsParam
	if err := c.BindAndValidate(&listVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	page, err := service.NewTweetService(ctx, infra.Deps).ListUserTweets(userId, listVar.UserId, listVar.Page, listVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweets fetched successfully"), page)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var tweetVar UpdateTweetParam
	if err := c.Bind(&tweetVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx, infra.Deps).UpdateTweet(userId, tweetVar.TweetId, tweetVar.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweet updated successfully"), tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var idVar TweetIdParam
	if err := c.BindAndValidate(&idVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewTweetService(ctx, infra.Deps).DeleteTweet(userId, idVar.TweetId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweet deleted successfully"), map[string]interface{}{})
}
