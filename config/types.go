package config

type config struct {
	Server        server        `yaml:"server" mapstructure:"server"`
	Storage       storage       `yaml:"storage" mapstructure:"storage"`
	Mysql         mysql         `yaml:"mysql" mapstructure:"mysql"`
	Redis         redis         `yaml:"redis" mapstructure:"redis"`
	RabbitMq      rabbitmq      `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio         minio         `yaml:"minio" mapstructure:"minio"`
	Elasticsearch elasticsearch `yaml:"elasticsearch" mapstructure:"elasticsearch"`
	Jwt           jwt           `yaml:"jwt" mapstructure:"jwt"`
	Jaeger        jaeger        `yaml:"jaeger" mapstructure:"jaeger"`
	RateLimit     rateLimit     `yaml:"rate_limit" mapstructure:"rate_limit"`
	Log           log           `yaml:"log" mapstructure:"log"`
}

type server struct {
	Addr        string   `yaml:"addr" mapstructure:"addr"`
	MaxBodySize int      `yaml:"max_body_size" mapstructure:"max_body_size"`
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	UploadDir   string   `yaml:"upload_dir" mapstructure:"upload_dir"`
	PprofAddr   string   `yaml:"pprof_addr" mapstructure:"pprof_addr"`
}

type storage struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
	Params   string `yaml:"params"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint    string `yaml:"endpoint"`
	AccessKey   string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey   string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL      bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL   string `yaml:"public_url" mapstructure:"public_url"`
	ImageBucket string `yaml:"image_bucket" mapstructure:"image_bucket"`
	VideoBucket string `yaml:"video_bucket" mapstructure:"video_bucket"`
}

type elasticsearch struct {
	Addr  string `yaml:"addr"`
	Index string `yaml:"index"`
}

type jwt struct {
	Secret     string `yaml:"secret"`
	Timeout    string `yaml:"timeout"`
	MaxRefresh string `yaml:"max_refresh" mapstructure:"max_refresh"`
}

type jaeger struct {
	Addr        string `yaml:"addr"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

type rateLimit struct {
	QPS float64 `yaml:"qps"`
}

type log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
