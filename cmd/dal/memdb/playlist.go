package memdb

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func clonePlaylist(p *model.Playlist) *model.Playlist {
	cp := *p
	cp.VideoIds = append(make([]string, 0, len(p.VideoIds)), p.VideoIds...)
	return &cp
}

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.playlists[playlist.Id]; ok {
		return errors.Wrapf(dal.ErrDuplicate, "CreatePlaylist failed,id:%s", playlist.Id)
	}
	now := s.now()
	playlist.CreatedAt, playlist.UpdatedAt = now, now
	if playlist.VideoIds == nil {
		playlist.VideoIds = make([]string, 0)
	}
	s.playlists[playlist.Id] = clonePlaylist(playlist)
	return nil
}

func (s *Store) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, notFound("playlist", id)
	}
	return clonePlaylist(p), nil
}

func (s *Store) ListUserPlaylists(ctx context.Context, ownerId string, offset, limit int) ([]*model.Playlist, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*model.Playlist, 0)
	for _, p := range s.playlists {
		if p.OwnerId == ownerId {
			matched = append(matched, clonePlaylist(p))
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].UpdatedAt.Equal(matched[j].UpdatedAt) {
			return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
		}
		return matched[i].Id < matched[j].Id
	})
	return window(matched, offset, limit), int64(len(matched)), nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, id, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return notFound("playlist", id)
	}
	p.Name, p.Description, p.UpdatedAt = name, description, s.now()
	return nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.playlists[id]; !ok {
		return notFound("playlist", id)
	}
	delete(s.playlists, id)
	return nil
}

func (s *Store) AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[playlistId]
	if !ok {
		return notFound("playlist", playlistId)
	}
	for _, id := range p.VideoIds {
		if id == videoId {
			return nil
		}
	}
	p.VideoIds = append(p.VideoIds, videoId)
	p.UpdatedAt = s.now()
	return nil
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[playlistId]
	if !ok {
		return false, notFound("playlist", playlistId)
	}
	for i, id := range p.VideoIds {
		if id == videoId {
			p.VideoIds = append(p.VideoIds[:i:i], p.VideoIds[i+1:]...)
			p.UpdatedAt = s.now()
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) RemoveVideoFromPlaylists(ctx context.Context, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.playlists {
		kept := p.VideoIds[:0:0]
		for _, id := range p.VideoIds {
			if id != videoId {
				kept = append(kept, id)
			}
		}
		p.VideoIds = kept
	}
	return nil
}
