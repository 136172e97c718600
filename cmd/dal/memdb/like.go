package memdb

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateLike(ctx context.Context, like *model.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := likeKey{like.LikedBy, like.TargetType, like.TargetId}
	if _, ok := s.likes[key]; ok {
		return errors.Wrapf(dal.ErrDuplicate, "CreateLike failed,target:%s/%s", like.TargetType, like.TargetId)
	}
	like.CreatedAt = s.now()
	cp := *like
	s.likes[key] = &cp
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, likedBy string, targetType model.TargetType, targetId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := likeKey{likedBy, targetType, targetId}
	if _, ok := s.likes[key]; !ok {
		return false, nil
	}
	delete(s.likes, key)
	return true, nil
}

func (s *Store) CountLikes(ctx context.Context, targetType model.TargetType, targetIds []string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := toSet(targetIds)
	res := make(map[string]int64, len(targetIds))
	for k := range s.likes {
		if k.targetType == targetType && want[k.targetId] {
			res[k.targetId]++
		}
	}
	return res, nil
}

func (s *Store) LikedTargets(ctx context.Context, likedBy string, targetType model.TargetType, targetIds []string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]bool, len(targetIds))
	for _, id := range targetIds {
		if _, ok := s.likes[likeKey{likedBy, targetType, id}]; ok {
			res[id] = true
		}
	}
	return res, nil
}

func (s *Store) LikedTargetIds(ctx context.Context, likedBy string, targetType model.TargetType) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0)
	for k := range s.likes {
		if k.likedBy == likedBy && k.targetType == targetType {
			ids = append(ids, k.targetId)
		}
	}
	return ids, nil
}

func (s *Store) DeleteTargetLikes(ctx context.Context, targetType model.TargetType, targetIds []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := toSet(targetIds)
	for k := range s.likes {
		if k.targetType == targetType && want[k.targetId] {
			delete(s.likes, k)
		}
	}
	return nil
}

// Likes 返回当前全部点赞记录条数, 供测试检查级联删除
func (s *Store) Likes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.likes)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
