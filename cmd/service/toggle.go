package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/pkg/lock"
)

// toggle 在 key 的互斥下切换一条关系记录, 返回切换后的状态
// 记录存在则删除并返回 false, 否则插入并返回 true
// 插入时遇到唯一索引冲突说明另一个请求已经插入, 同样返回 true
func toggle(ctx context.Context, locker lock.Locker, key string, remove func() (bool, error), create func() error) (bool, error) {
	if locker != nil {
		unlock, err := locker.Lock(ctx, key)
		if err != nil {
			return false, errors.WithMessage(err, "toggle failed")
		}
		defer unlock()
	}

	removed, err := remove()
	if err != nil {
		return false, errors.WithMessage(err, "toggle remove failed")
	}
	if removed {
		return false, nil
	}
	if err = create(); err != nil {
		if dal.IsDuplicate(err) {
			return true, nil
		}
		return false, errors.WithMessage(err, "toggle create failed")
	}
	return true, nil
}
