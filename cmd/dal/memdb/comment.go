package memdb

import (
	"context"
	"time"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	comment.CreatedAt, comment.UpdatedAt = now, now
	cp := *comment
	s.comments[comment.Id] = &cp
	return nil
}

func (s *Store) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, notFound("comment", id)
	}
	cp := *c
	return &cp, nil
}

func (s *Store) ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.VideoId == videoId {
			cp := *c
			matched = append(matched, &cp)
		}
	}
	byCreatedDesc(matched,
		func(c *model.Comment) time.Time { return c.CreatedAt },
		func(c *model.Comment) string { return c.Id })
	return window(matched, offset, limit), int64(len(matched)), nil
}

func (s *Store) CommentIdsByVideo(ctx context.Context, videoId string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0)
	for _, c := range s.comments {
		if c.VideoId == videoId {
			ids = append(ids, c.Id)
		}
	}
	return ids, nil
}

func (s *Store) UpdateComment(ctx context.Context, id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return notFound("comment", id)
	}
	c.Content, c.UpdatedAt = content, s.now()
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return notFound("comment", id)
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) DeleteVideoComments(ctx context.Context, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.comments {
		if c.VideoId == videoId {
			delete(s.comments, id)
		}
	}
	return nil
}
