package lock

import (
	"context"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
	goredislib "github.com/redis/go-redis/v9"

	"vidtube.com/pkg/constants"
)

// Locker 按 key 互斥, 返回的 unlock 必须被调用
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type Redis struct {
	rs *redsync.Redsync
}

func NewRedis(client *goredislib.Client) *Redis {
	return &Redis{rs: redsync.New(goredis.NewPool(client))}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	mutex := r.rs.NewMutex(constants.LockPrefix+key,
		redsync.WithExpiry(constants.LockExpiry*time.Second),
		redsync.WithTries(64),
		redsync.WithRetryDelay(20*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "acquire lock %s failed", key)
	}
	return func() {
		// 过期后解锁失败不影响已完成的写入
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// Local 是进程内的按 key 互斥锁, 未配置 Redis 时使用
type Local struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewLocal() *Local {
	return &Local{locks: make(map[string]*entry)}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}, nil
}
