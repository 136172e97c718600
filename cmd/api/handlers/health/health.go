package handlers

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/pkg/errno"
)

type Status struct {
	Store         string  `json:"store"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
}

func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": "pong"})
}

// HealthCheck 存储不可用时返回 503
func HealthCheck(ctx context.Context, c *app.RequestContext) {
	status := Status{Store: "ok"}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := infra.Deps.Store.Ping(pingCtx); err != nil {
		hlog.CtxErrorf(ctx, "store ping failed:%v", err)
		pack.SendResponse(c, errno.NewErrNo(consts.StatusServiceUnavailable, "Store is unavailable"), nil)
		return
	}
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		status.CPUPercent = percent[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryPercent = vm.UsedPercent
	}
	pack.SendResponse(c, errno.Success.WithMessage("OK"), status)
}
