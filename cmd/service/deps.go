package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/dal"
	"vidtube.com/pkg/lock"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/search"
)

// Deps 汇总各个服务依赖的基础设施, 由 main 组装
type Deps struct {
	Store  dal.Store
	Media  oss.MediaStore
	Search search.Indexer
	Locker lock.Locker
	Events mq.Publisher
}

// WithDefaults 为未设置的可选依赖填充空实现
func (d *Deps) WithDefaults() *Deps {
	if d.Media == nil {
		d.Media = oss.Unavailable{}
	}
	if d.Search == nil {
		d.Search = search.Noop{}
	}
	if d.Locker == nil {
		d.Locker = lock.NewLocal()
	}
	if d.Events == nil {
		d.Events = mq.Noop{}
	}
	return d
}

// publish 事件发送失败只记录日志
func (d *Deps) publish(ctx context.Context, event *mq.Event) {
	if err := d.Events.Publish(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish event %s failed:%v", event.Type, err)
	}
}
