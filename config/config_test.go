package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("storage.driver", "memory")
	v.Set("rate_limit.qps", 50)
	Load(v)

	assert.Equal(t, "0.0.0.0:8000", ConfigInfo.Server.Addr)
	assert.Equal(t, "memory", ConfigInfo.Storage.Driver)
	assert.Equal(t, "24h", ConfigInfo.Jwt.Timeout)
	assert.Equal(t, "video", ConfigInfo.Minio.VideoBucket)
	assert.Equal(t, float64(50), ConfigInfo.RateLimit.QPS)
}
