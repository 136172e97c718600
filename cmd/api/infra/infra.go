package infra

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/dal/memdb"
	"vidtube.com/cmd/service"
	"vidtube.com/config"
	"vidtube.com/pkg/lock"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/search"
	"vidtube.com/pkg/tracer"
)

// Deps 是所有 handler 共享的依赖, 由 Init 根据配置组装
var Deps *service.Deps

var closers []io.Closer

func Init() {
	cfg := config.ConfigInfo

	closer, err := tracer.InitJaeger(cfg.Jaeger.ServiceName, cfg.Jaeger.Addr)
	if err != nil {
		hlog.Warnf("jaeger disabled: %v", err)
	} else {
		closers = append(closers, closer)
	}

	deps := &service.Deps{}
	switch cfg.Storage.Driver {
	case "memory":
		hlog.Warn("using in-memory store, data is lost on restart")
		deps.Store = memdb.New()
	default:
		db.Init()
		deps.Store = db.NewStore(db.DB)
	}

	media, err := oss.NewMediaStore(oss.Config{
		Endpoint:    cfg.Minio.Endpoint,
		AccessKey:   cfg.Minio.AccessKey,
		SecretKey:   cfg.Minio.SecretKey,
		UseSSL:      cfg.Minio.UseSSL,
		PublicURL:   cfg.Minio.PublicURL,
		ImageBucket: cfg.Minio.ImageBucket,
		VideoBucket: cfg.Minio.VideoBucket,
	})
	if err != nil {
		panic(err)
	}
	deps.Media = media

	if cfg.Elasticsearch.Addr != "" {
		es, err := search.NewElastic(cfg.Elasticsearch.Addr, cfg.Elasticsearch.Index)
		if err != nil {
			hlog.Warnf("elasticsearch disabled: %v", err)
		} else {
			deps.Search = es
		}
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			hlog.Warnf("redis unreachable, toggles use in-process locks: %v", err)
			client.Close()
		} else {
			deps.Locker = lock.NewRedis(client)
			closers = append(closers, client)
		}
	}

	if cfg.RabbitMq.Addr != "" {
		url := fmt.Sprintf("amqp://%s:%s@%s/", cfg.RabbitMq.Username, cfg.RabbitMq.Password, cfg.RabbitMq.Addr)
		producer, err := mq.NewProducer(url)
		if err != nil {
			hlog.Warnf("rabbitmq disabled: %v", err)
		} else {
			deps.Events = producer
			closers = append(closers, producer)
		}
	}

	Deps = deps.WithDefaults()
}

func Close() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			hlog.Warnf("close resource failed: %v", err)
		}
	}
	closers = nil
}
