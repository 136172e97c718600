package limiter

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

const Resource = "vidtube-api"

var enabled bool

// Init 加载全局 QPS 规则, qps <= 0 时不限流
func Init(qps float64) error {
	if qps <= 0 {
		return nil
	}
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "init sentinel failed")
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               Resource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		return errors.Wrap(err, "load sentinel flow rules failed")
	}
	enabled = true
	hlog.Infof("sentinel flow rule loaded, qps:%v", qps)
	return nil
}

// Middleware 超出阈值的请求交给 onBlocked 写出响应
func Middleware(onBlocked app.HandlerFunc) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !enabled {
			c.Next(ctx)
			return
		}
		e, b := sentinel.Entry(Resource, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			onBlocked(ctx, c)
			c.Abort()
			return
		}
		defer e.Exit()
		c.Next(ctx)
	}
}
