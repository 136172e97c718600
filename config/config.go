package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper的好处在于支持配置文件的热更新 同时viper对于大小写并不敏感 都是统一进行处理
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	// VIDTUBE_MYSQL_ADDR 这样的环境变量会覆盖配置文件里的 mysql.addr
	v.SetEnvPrefix("vidtube")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, falling back to defaults and env: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	Load(v)
}

// Load 从给定的 viper 实例中取出配置, 测试里可以直接构造 viper 调用
func Load(v *viper.Viper) {
	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.MaxBodySize = v.GetInt("server.max_body_size")
	ConfigInfo.Server.CorsOrigins = v.GetStringSlice("server.cors_origins")
	ConfigInfo.Server.UploadDir = v.GetString("server.upload_dir")
	ConfigInfo.Server.PprofAddr = v.GetString("server.pprof_addr")

	ConfigInfo.Storage.Driver = v.GetString("storage.driver")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")
	ConfigInfo.Mysql.Params = v.GetString("mysql.params")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = v.GetString("minio.public_url")
	ConfigInfo.Minio.ImageBucket = v.GetString("minio.image_bucket")
	ConfigInfo.Minio.VideoBucket = v.GetString("minio.video_bucket")

	ConfigInfo.Elasticsearch.Addr = v.GetString("elasticsearch.addr")
	ConfigInfo.Elasticsearch.Index = v.GetString("elasticsearch.index")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = v.GetString("jwt.timeout")
	ConfigInfo.Jwt.MaxRefresh = v.GetString("jwt.max_refresh")

	ConfigInfo.Jaeger.Addr = v.GetString("jaeger.addr")
	ConfigInfo.Jaeger.ServiceName = v.GetString("jaeger.service_name")

	ConfigInfo.RateLimit.QPS = v.GetFloat64("rate_limit.qps")

	ConfigInfo.Log.Level = v.GetString("log.level")
	ConfigInfo.Log.Format = v.GetString("log.format")

	logrus.Infof("Config loaded - storage: %s, MySQL: %s:%s@%s/%s",
		ConfigInfo.Storage.Driver, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured!")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("server.max_body_size", 512*1024*1024)
	v.SetDefault("server.upload_dir", "./public/temp")
	v.SetDefault("storage.driver", "mysql")
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("minio.image_bucket", "picture")
	v.SetDefault("minio.video_bucket", "video")
	v.SetDefault("elasticsearch.index", "videos")
	v.SetDefault("jwt.timeout", "24h")
	v.SetDefault("jwt.max_refresh", "240h")
	v.SetDefault("jaeger.service_name", "vidtube")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
