package memdb

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserName == user.UserName || u.Email == user.Email {
			return errors.Wrapf(dal.ErrDuplicate, "CreateUser failed,username:%s", user.UserName)
		}
	}
	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	cp := *user
	s.users[user.Id] = &cp
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserName == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user", username)
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserName == login || u.Email == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user", login)
}

func (s *Store) UsersByIds(ctx context.Context, ids []string) (map[string]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			cp := *u
			res[id] = &cp
		}
	}
	return res, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id, fullName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return notFound("user", id)
	}
	for _, other := range s.users {
		if other.Id != id && other.Email == email {
			return errors.Wrapf(dal.ErrDuplicate, "UpdateAccount failed,email:%s", email)
		}
	}
	u.FullName, u.Email, u.UpdatedAt = fullName, email, s.now()
	return nil
}

func (s *Store) UpdateAvatar(ctx context.Context, id string, avatar model.MediaRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return notFound("user", id)
	}
	u.Avatar, u.UpdatedAt = avatar, s.now()
	return nil
}

func (s *Store) AddWatchHistory(ctx context.Context, userId, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.history[userId] {
		if id == videoId {
			return nil
		}
	}
	s.history[userId] = append(s.history[userId], videoId)
	return nil
}

func (s *Store) WatchHistory(ctx context.Context, userId string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.history[userId]...), nil
}
