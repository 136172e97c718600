package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/service"
	"vidtube.com/pkg/errno"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var registerVar RegisterParam
	if err := c.Bind(&registerVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	avatar, err := pack.SaveUpload(c, "avatar")
	if err != nil {
		hlog.CtxErrorf(ctx, "stage avatar failed:%v", err)
		pack.SendResponse(c, err, nil)
		return
	}

	user, err := service.NewUserService(ctx, infra.Deps).Register(&service.RegisterRequest{
		UserName:   registerVar.UserName,
		FullName:   registerVar.FullName,
		Email:      registerVar.Email,
		Password:   registerVar.Password,
		AvatarPath: avatar,
	})
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("User registered successfully"), user)
}
