package memdb

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[video.Id]; ok {
		return errors.Wrapf(dal.ErrDuplicate, "CreateVideo failed,id:%s", video.Id)
	}
	now := s.now()
	if video.CreatedAt.IsZero() {
		video.CreatedAt = now
	}
	video.UpdatedAt = now
	cp := *video
	s.videos[video.Id] = &cp
	return nil
}

func (s *Store) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.videos[id]
	if !ok {
		return nil, notFound("video", id)
	}
	cp := *v
	return &cp, nil
}

func (s *Store) QueryVideos(ctx context.Context, q model.VideoQuery) ([]*model.Video, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var allow map[string]bool
	if q.Ids != nil {
		allow = make(map[string]bool, len(q.Ids))
		for _, id := range q.Ids {
			allow[id] = true
		}
	}
	kw := strings.ToLower(q.Keyword)
	matched := make([]*model.Video, 0)
	for _, v := range s.videos {
		if allow != nil && !allow[v.Id] {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(v.Title), kw) &&
			!strings.Contains(strings.ToLower(v.Description), kw) {
			continue
		}
		if q.OwnerId != "" && v.OwnerId != q.OwnerId {
			continue
		}
		if q.PublishedOnly && !v.IsPublished {
			continue
		}
		cp := *v
		matched = append(matched, &cp)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareVideos(matched[i], matched[j], q.SortField)
		if c == 0 {
			return matched[i].Id < matched[j].Id
		}
		if q.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return window(matched, q.Offset, q.Limit), int64(len(matched)), nil
}

func compareVideos(a, b *model.Video, field string) int {
	switch field {
	case "views":
		return cmpOrdered(a.Views, b.Views)
	case "duration":
		return cmpOrdered(a.Duration, b.Duration)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s *Store) VideosByIds(ctx context.Context, ids []string) (map[string]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]*model.Video, len(ids))
	for _, id := range ids {
		if v, ok := s.videos[id]; ok {
			cp := *v
			res[id] = &cp
		}
	}
	return res, nil
}

func (s *Store) LatestVideo(ctx context.Context, ownerId string) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *model.Video
	for _, v := range s.videos {
		if v.OwnerId != ownerId || !v.IsPublished {
			continue
		}
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			latest = v
		}
	}
	if latest == nil {
		return nil, notFound("latest video of", ownerId)
	}
	cp := *latest
	return &cp, nil
}

func (s *Store) UpdateVideo(ctx context.Context, id string, upd model.VideoUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return notFound("video", id)
	}
	v.Title, v.Description = upd.Title, upd.Description
	if upd.Thumbnail != nil {
		v.Thumbnail = *upd.Thumbnail
	}
	v.UpdatedAt = s.now()
	return nil
}

func (s *Store) SetPublished(ctx context.Context, id string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return notFound("video", id)
	}
	v.IsPublished, v.UpdatedAt = published, s.now()
	return nil
}

func (s *Store) IncrementViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return notFound("video", id)
	}
	v.Views++
	return nil
}

func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[id]; !ok {
		return notFound("video", id)
	}
	delete(s.videos, id)
	return nil
}
