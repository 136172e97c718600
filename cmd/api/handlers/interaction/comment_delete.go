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

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var deleteVar CommentIdParam
	if err := c.BindAndValidate(&deleteVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewCommentService(ctx, infra.Deps).DeleteComment(userId, deleteVar.CommentId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comment deleted successfully"), map[string]interface{}{})
}
