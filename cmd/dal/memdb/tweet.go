package memdb

import (
	"context"
	"time"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	tweet.CreatedAt, tweet.UpdatedAt = now, now
	cp := *tweet
	s.tweets[tweet.Id] = &cp
	return nil
}

func (s *Store) GetTweet(ctx context.Context, id string) (*model.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tweets[id]
	if !ok {
		return nil, notFound("tweet", id)
	}
	cp := *t
	return &cp, nil
}

func (s *Store) ListUserTweets(ctx context.Context, ownerId string, offset, limit int) ([]*model.Tweet, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*model.Tweet, 0)
	for _, t := range s.tweets {
		if t.OwnerId == ownerId {
			cp := *t
			matched = append(matched, &cp)
		}
	}
	byCreatedDesc(matched,
		func(t *model.Tweet) time.Time { return t.CreatedAt },
		func(t *model.Tweet) string { return t.Id })
	return window(matched, offset, limit), int64(len(matched)), nil
}

func (s *Store) UpdateTweet(ctx context.Context, id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok {
		return notFound("tweet", id)
	}
	t.Content, t.UpdatedAt = content, s.now()
	return nil
}

func (s *Store) DeleteTweet(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tweets[id]; !ok {
		return notFound("tweet", id)
	}
	delete(s.tweets, id)
	return nil
}
