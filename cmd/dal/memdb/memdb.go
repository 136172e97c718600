package memdb

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

// Store 是进程内的 dal.Store 实现, 所有表由一把读写锁保护
// 唯一约束与 MySQL 中的唯一索引保持一致
type Store struct {
	mu sync.RWMutex

	users         map[string]*model.User
	history       map[string][]string
	videos        map[string]*model.Video
	comments      map[string]*model.Comment
	tweets        map[string]*model.Tweet
	likes         map[likeKey]*model.Like
	playlists     map[string]*model.Playlist
	subscriptions map[subKey]*model.Subscription

	last time.Time
}

type likeKey struct {
	likedBy    string
	targetType model.TargetType
	targetId   string
}

type subKey struct {
	subscriber string
	channel    string
}

var _ dal.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:         make(map[string]*model.User),
		history:       make(map[string][]string),
		videos:        make(map[string]*model.Video),
		comments:      make(map[string]*model.Comment),
		tweets:        make(map[string]*model.Tweet),
		likes:         make(map[likeKey]*model.Like),
		playlists:     make(map[string]*model.Playlist),
		subscriptions: make(map[subKey]*model.Subscription),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// now 严格递增, 保证同一时刻写入的记录也有确定的先后顺序
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func notFound(kind, id string) error {
	return errors.Wrapf(dal.ErrRecordNotFound, "%s not found,id:%s", kind, id)
}

func window[T any](all []T, offset, limit int) []T {
	if offset < 0 || offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}

// byCreatedDesc 先按创建时间倒序, 时间相同时按 id 升序
func byCreatedDesc[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) < id(items[j])
	})
}
