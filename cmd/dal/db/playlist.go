package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := s.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(translate(err), "CreatePlaylist failed,name:%s", playlist.Name)
	}
	return nil
}

func (s *Store) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetPlaylist failed,id:%s", id)
	}
	if err := s.loadVideoIds(ctx, []*model.Playlist{&playlist}); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (s *Store) ListUserPlaylists(ctx context.Context, ownerId string, offset, limit int) ([]*model.Playlist, int64, error) {
	playlists := make([]*model.Playlist, 0)
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Playlist{}).Where("owner_id = ?", ownerId).
		Count(&count).Order("updated_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).Find(&playlists).Error; err != nil {
		return playlists, count, errors.Wrapf(err, "ListUserPlaylists failed,owner:%s", ownerId)
	}
	if err := s.loadVideoIds(ctx, playlists); err != nil {
		return playlists, count, err
	}
	return playlists, count, nil
}

func (s *Store) loadVideoIds(ctx context.Context, playlists []*model.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}
	byId := make(map[string]*model.Playlist, len(playlists))
	ids := make([]string, 0, len(playlists))
	for _, p := range playlists {
		p.VideoIds = make([]string, 0)
		byId[p.Id] = p
		ids = append(ids, p.Id)
	}
	var entries []*model.PlaylistVideo
	if err := s.db.WithContext(ctx).Where("playlist_id IN ?", ids).
		Order("playlist_id").Order("position ASC").Find(&entries).Error; err != nil {
		return errors.Wrapf(err, "load playlist videos failed,count:%d", len(ids))
	}
	for _, e := range entries {
		byId[e.PlaylistId].VideoIds = append(byId[e.PlaylistId].VideoIds, e.VideoId)
	}
	return nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, id, name, description string) error {
	if err := s.db.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "description": description}).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed,id:%s", id)
	}
	return nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "DeletePlaylist failed,id:%s", id)
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(translate(gorm.ErrRecordNotFound), "DeletePlaylist failed,id:%s", id)
		}
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrapf(err, "DeletePlaylist entries failed,id:%s", id)
		}
		return nil
	})
}

// AddPlaylistVideo 新条目追加到末尾, 并刷新播放列表的 updated_at
func (s *Store) AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		if err := tx.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
			return errors.Wrapf(err, "AddPlaylistVideo position failed,playlist:%s", playlistId)
		}
		entry := &model.PlaylistVideo{Id: uuid.NewString(), PlaylistId: playlistId, VideoId: videoId, Position: maxPos + 1}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "AddPlaylistVideo failed,playlist:%s,video:%s", playlistId, videoId)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return touchPlaylist(tx, playlistId)
	})
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Delete(&model.PlaylistVideo{})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "RemovePlaylistVideo failed,playlist:%s,video:%s", playlistId, videoId)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return touchPlaylist(tx, playlistId)
	})
	return removed, err
}

func (s *Store) RemoveVideoFromPlaylists(ctx context.Context, videoId string) error {
	if err := s.db.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemoveVideoFromPlaylists failed,video:%s", videoId)
	}
	return nil
}

func touchPlaylist(tx *gorm.DB, playlistId string) error {
	if err := tx.Model(&model.Playlist{}).Where("id = ?", playlistId).
		Update("updated_at", time.Now()).Error; err != nil {
		return errors.Wrapf(err, "touch playlist failed,id:%s", playlistId)
	}
	return nil
}
