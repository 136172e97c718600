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

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var commentVar CreateCommentParam
	if err := c.Bind(&commentVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	comment, err := service.NewCommentService(ctx, infra.Deps).AddComment(userId, commentVar.VideoId, commentVar.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Comment added successfully"), comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var commentVar UpdateCommentParam
	if err := c.Bind(&commentVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	comment, err := service.NewCommentService(ctx, infra.Deps).UpdateComment(userId, commentVar.CommentId, commentVar.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comment updated successfully"), comment)
}
