package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/model"
	"vidtube.com/cmd/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

// LikeAction 返回按目标类型切换点赞的 handler, 目标 id 从对应的路径参数取
func LikeAction(targetType model.TargetType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var likeVar LikeParam
		if err := c.BindAndValidate(&likeVar); err != nil {
			pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
			return
		}
		userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			pack.SendResponse(c, err, nil)
			return
		}

		svc := service.NewLikeService(ctx, infra.Deps)
		var status *model.LikeStatus
		switch targetType {
		case model.TargetVideo:
			status, err = svc.ToggleVideoLike(userId, likeVar.VideoId)
		case model.TargetComment:
			status, err = svc.ToggleCommentLike(userId, likeVar.CommentId)
		default:
			status, err = svc.ToggleTweetLike(userId, likeVar.TweetId)
		}
		if err != nil {
			pack.SendResponse(c, err, nil)
			return
		}
		pack.SendResponse(c, errno.Success.WithMessage("Like toggled successfully"), status)
	}
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var listVar LikeListParam
	if err := c.BindAndValidate(&listVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	page, err := service.NewLikeService(ctx, infra.Deps).ListLikedVideos(userId, listVar.Page, listVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Liked videos fetched successfully"), page)
}
