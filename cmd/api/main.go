package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/service"
	"vidtube.com/config"
	"vidtube.com/config/pprof"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/limiter"
)

func Init() {
	config.Init()
	initLog()
	pprof.Load(config.ConfigInfo.Server.PprofAddr)
	infra.Init()
	pack.UploadDir = config.ConfigInfo.Server.UploadDir

	if err := jwt.Init(jwtOptions()); err != nil {
		panic(err)
	}
	if err := limiter.Init(config.ConfigInfo.RateLimit.QPS); err != nil {
		hlog.Warnf("rate limiter disabled: %v", err)
	}
}

func initLog() {
	level, err := logrus.ParseLevel(config.ConfigInfo.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if config.ConfigInfo.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		hlog.SetLevel(hlog.LevelDebug)
	case logrus.WarnLevel:
		hlog.SetLevel(hlog.LevelWarn)
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		hlog.SetLevel(hlog.LevelError)
	default:
		hlog.SetLevel(hlog.LevelInfo)
	}
}

func jwtOptions() jwt.Options {
	timeout, err := time.ParseDuration(config.ConfigInfo.Jwt.Timeout)
	if err != nil {
		timeout = 24 * time.Hour
	}
	maxRefresh, err := time.ParseDuration(config.ConfigInfo.Jwt.MaxRefresh)
	if err != nil {
		maxRefresh = 240 * time.Hour
	}
	return jwt.Options{
		Secret:     config.ConfigInfo.Jwt.Secret,
		Timeout:    timeout,
		MaxRefresh: maxRefresh,
		Authenticate: func(ctx context.Context, login, password string) (string, error) {
			return service.NewUserService(ctx, infra.Deps).Authenticate(login, password)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, err error) {
			pack.SendResponse(c, err, nil)
		},
	}
}

// middlewares 是所有路由共用的中间件: 错误恢复, CORS, 限流
func middlewares(origins []string) []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.Recovery(recovery.WithRecoveryHandler(
			func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
				hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
				pack.SendResponse(c, errno.ServiceErr.WithMessage(fmt.Sprintf("[Recovery] err=%v", err)), nil)
			})),
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Refresh-Token"},
			ExposeHeaders:    []string{"Content-Length", "Access-Token"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		limiter.Middleware(func(ctx context.Context, c *app.RequestContext) {
			pack.SendResponse(c, errno.TooManyRequests, nil)
		}),
	}
}

func main() {
	Init()
	defer infra.Close()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxBodySize),
	)
	r.Use(middlewares(corsOrigins())...)

	// 注册路由
	register(r)

	r.Spin()
}

func corsOrigins() []string {
	if len(config.ConfigInfo.Server.CorsOrigins) > 0 {
		return config.ConfigInfo.Server.CorsOrigins
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:5173"}
}
