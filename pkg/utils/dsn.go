package utils

import (
	"strings"

	"vidtube.com/config"
)

func GetMysqlDsn() string {
	//生成数据库的dsn
	m := config.ConfigInfo.Mysql
	dsn := strings.Join([]string{m.Username, ":", m.Password, "@tcp(", m.Addr, ")/", m.Database,
		"?charset=" + m.Charset + "&parseTime=true&loc=Local"}, "") //nolint:lll
	if m.Params != "" {
		dsn += "&" + m.Params
	}
	return dsn
}
