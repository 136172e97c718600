package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/pkg/errors"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

// LoginUser 凭证校验由 access token 中间件的 Authenticator 完成
func LoginUser(ctx context.Context, c *app.RequestContext) {
	userId, tokens, err := jwt.Login(ctx, c)
	if errors.Is(err, jwt.ErrResponded) {
		return
	}
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	user, err := service.NewUserService(ctx, infra.Deps).CurrentUser(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("User logged in successfully"), LoginData{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func LogoutUser(ctx context.Context, c *app.RequestContext) {
	jwt.ClearTokens(c)
	pack.SendResponse(c, errno.Success.WithMessage("User logged out"), map[string]interface{}{})
}

// RefreshToken 用仍然有效的 refresh token 换一对新的令牌
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsRefreshTokenAvailable(ctx, c) {
		pack.SendResponse(c, errno.Unauthenticated.WithMessage("Invalid or expired refresh token"), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if _, err = service.NewUserService(ctx, infra.Deps).CurrentUser(userId); err != nil {
		pack.SendResponse(c, errno.Unauthenticated.WithMessage("Invalid refresh token"), nil)
		return
	}
	tokens, err := jwt.GenerateTokens(ctx, c, userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Access token refreshed"), tokens)
}
