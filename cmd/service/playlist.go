package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

type PlaylistService struct {
	ctx  context.Context
	deps *Deps
}

func NewPlaylistService(ctx context.Context, deps *Deps) *PlaylistService {
	return &PlaylistService{ctx: ctx, deps: deps}
}

func (s *PlaylistService) CreatePlaylist(principal, name, description string) (*model.Playlist, error) {
	if err := RequireText("name", name); err != nil {
		return nil, err
	}
	if err := RequireText("description", description); err != nil {
		return nil, err
	}
	playlist := &model.Playlist{
		Id:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerId:     principal,
		VideoIds:    []string{},
	}
	if err := s.deps.Store.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "create playlist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(principal, playlistId, name, description string) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(principal, playlistId, "update this playlist")
	if err != nil {
		return nil, err
	}
	if err = RequireText("name", name); err != nil {
		return nil, err
	}
	if err = RequireText("description", description); err != nil {
		return nil, err
	}
	if err = s.deps.Store.UpdatePlaylist(s.ctx, playlist.Id, name, description); err != nil {
		return nil, errors.WithMessage(err, "update playlist failed")
	}
	return s.reload(playlist.Id)
}

// DeletePlaylist 只删除播放列表本身和其中的条目, 视频不受影响
func (s *PlaylistService) DeletePlaylist(principal, playlistId string) error {
	playlist, err := s.ownedPlaylist(principal, playlistId, "delete this playlist")
	if err != nil {
		return err
	}
	if err = s.deps.Store.DeletePlaylist(s.ctx, playlist.Id); err != nil {
		return notFoundOr(err, "Playlist")
	}
	return nil
}

func (s *PlaylistService) AddVideoToPlaylist(principal, playlistId, videoId string) (*model.Playlist, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	playlist, err := s.ownedPlaylist(principal, playlistId, "add videos to this playlist")
	if err != nil {
		return nil, err
	}
	if _, err = s.deps.Store.GetVideo(s.ctx, videoId); err != nil {
		return nil, notFoundOr(err, "Video")
	}
	if err = s.deps.Store.AddPlaylistVideo(s.ctx, playlist.Id, videoId); err != nil {
		return nil, errors.WithMessage(err, "add video to playlist failed")
	}
	return s.reload(playlist.Id)
}

func (s *PlaylistService) RemoveVideoFromPlaylist(principal, playlistId, videoId string) (*model.Playlist, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	playlist, err := s.ownedPlaylist(principal, playlistId, "remove videos from this playlist")
	if err != nil {
		return nil, err
	}
	removed, err := s.deps.Store.RemovePlaylistVideo(s.ctx, playlist.Id, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "remove video from playlist failed")
	}
	if !removed {
		return nil, errno.NotFound.WithMessage("Video not found in playlist")
	}
	return s.reload(playlist.Id)
}

// ListUserPlaylists 的 totalVideos 和 totalViews 统计列表中仍然存在的视频
func (s *PlaylistService) ListUserPlaylists(userId string, page, limit int64) (*model.Page[model.PlaylistSummary], error) {
	if err := CheckId(userId, "user"); err != nil {
		return nil, err
	}
	p := model.NewPagination(page, limit)
	playlists, total, err := s.deps.Store.ListUserPlaylists(s.ctx, userId, p.Offset(), p.Limit)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "playlists")
	}
	if len(playlists) == 0 {
		return nil, errno.NotFound.WithMessage("No playlists found")
	}

	var videoIds []string
	for _, pl := range playlists {
		videoIds = append(videoIds, pl.VideoIds...)
	}
	videos, err := s.deps.Store.VideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "playlists")
	}

	summaries := make([]model.PlaylistSummary, 0, len(playlists))
	for _, pl := range playlists {
		summary := model.PlaylistSummary{
			Id:          pl.Id,
			Name:        pl.Name,
			Description: pl.Description,
			UpdatedAt:   pl.UpdatedAt,
		}
		for _, id := range pl.VideoIds {
			if v, ok := videos[id]; ok {
				summary.TotalVideos++
				summary.TotalViews += v.Views
			}
		}
		summaries = append(summaries, summary)
	}
	return model.NewPage(summaries, total, p), nil
}

// GetPlaylist 只展示已发布的视频, 保持列表中的顺序
func (s *PlaylistService) GetPlaylist(playlistId string) (*model.PlaylistDetail, error) {
	if err := CheckId(playlistId, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := s.deps.Store.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, notFoundOr(err, "Playlist")
	}
	videos, err := s.deps.Store.VideosByIds(s.ctx, playlist.VideoIds)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "playlist")
	}
	owners, err := ownerSummaries(s.ctx, s.deps.Store, []string{playlist.OwnerId})
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "playlist")
	}

	detail := &model.PlaylistDetail{
		Id:          playlist.Id,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		Videos:      make([]model.VideoBrief, 0, len(playlist.VideoIds)),
		Owner:       owners[playlist.OwnerId],
	}
	for _, id := range playlist.VideoIds {
		v, ok := videos[id]
		if !ok || !v.IsPublished {
			continue
		}
		detail.Videos = append(detail.Videos, v.Brief())
		detail.TotalVideos++
		detail.TotalViews += v.Views
	}
	return detail, nil
}

func (s *PlaylistService) ownedPlaylist(principal, playlistId, action string) (*model.Playlist, error) {
	if err := CheckId(playlistId, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := s.deps.Store.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, notFoundOr(err, "Playlist")
	}
	if err = Authorize(playlist.OwnerId, principal, action); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) reload(playlistId string) (*model.Playlist, error) {
	playlist, err := s.deps.Store.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, notFoundOr(err, "Playlist")
	}
	return playlist, nil
}
