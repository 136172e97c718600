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

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var playlistVar PlaylistParam
	if err := c.Bind(&playlistVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, infra.Deps).CreatePlaylist(userId, playlistVar.Name, playlistVar.Description)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Playlist created successfully"), playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var idVar PlaylistIdParam
	if err := c.BindAndValidate(&idVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	detail, err := service.NewPlaylistService(ctx, infra.Deps).GetPlaylist(idVar.PlaylistId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist fetched successfully"), detail)
}

func ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	var listVar UserPlaylistParam
	if err := c.BindAndValidate(&listVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	page, err := service.NewPlaylistService(ctx, infra.Deps).ListUserPlaylists(listVar.UserId, listVar.Page, listVar.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("User playlists fetched successfully"), page)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var updateVar UpdatePlaylistParam
	if err := c.Bind(&updateVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, infra.Deps).UpdatePlaylist(userId, updateVar.PlaylistId, updateVar.Name, updateVar.Description)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist updated successfully"), playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var idVar PlaylistIdParam
	if err := c.BindAndValidate(&idVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewPlaylistService(ctx, infra.Deps).DeletePlaylist(userId, idVar.PlaylistId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist deleted successfully"), map[string]interface{}{})
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	var addVar PlaylistVideoParam
	if err := c.BindAndValidate(&addVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, infra.Deps).AddVideoToPlaylist(userId, addVar.PlaylistId, addVar.VideoId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video added to playlist successfully"), playlist)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	var removeVar PlaylistVideoParam
	if err := c.BindAndValidate(&removeVar); err != nil {
		pack.SendResponse(c, errno.ValidationFailed.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, infra.Deps).RemoveVideoFromPlaylist(userId, removeVar.PlaylistId, removeVar.VideoId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video removed from playlist successfully"), playlist)
}
