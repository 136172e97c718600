package service

import (
	"context"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

// 读模型的公共阶段: 关联作者, 计算点赞数与当前用户状态

func uniqueIds[T any](items []T, id func(T) string) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		v := id(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		ids = append(ids, v)
	}
	return ids
}

// ownerSummaries 作者被删除时只保留 id
func ownerSummaries(ctx context.Context, store dal.UserStore, ids []string) (map[string]model.OwnerSummary, error) {
	users, err := store.UsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[string]model.OwnerSummary, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			res[id] = u.Summary()
		} else {
			res[id] = model.OwnerSummary{Id: id}
		}
	}
	return res, nil
}

func videoItems(ctx context.Context, store dal.UserStore, videos []*model.Video) ([]model.VideoListItem, error) {
	owners, err := ownerSummaries(ctx, store, uniqueIds(videos, func(v *model.Video) string { return v.OwnerId }))
	if err != nil {
		return nil, err
	}
	items := make([]model.VideoListItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, model.VideoListItem{Video: v, OwnerDetails: owners[v.OwnerId]})
	}
	return items, nil
}

type likeStats struct {
	counts map[string]int64
	liked  map[string]bool
}

func loadLikeStats(ctx context.Context, store dal.LikeStore, principal string, targetType model.TargetType, ids []string) (*likeStats, error) {
	counts, err := store.CountLikes(ctx, targetType, ids)
	if err != nil {
		return nil, err
	}
	liked, err := store.LikedTargets(ctx, principal, targetType, ids)
	if err != nil {
		return nil, err
	}
	return &likeStats{counts: counts, liked: liked}, nil
}
