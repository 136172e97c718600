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

func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	var updateVar UpdateAccountParam
	if err := c.Bind(&updateVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	user, err := service.NewUserService(ctx, infra.Deps).UpdateAccount(userId, updateVar.FullName, updateVar.Email)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Account details updated successfully"), user)
}

func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	avatar, err := pack.SaveUpload(c, "avatar")
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	user, err := service.NewUserService(ctx, infra.Deps).UpdateAvatar(userId, avatar)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Avatar updated successfully"), user)
}
