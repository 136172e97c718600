package model

import "github.com/pkg/errors"

// Tables 返回需要建表的全部实体, 顺序与外键无关
func Tables() []interface{} {
	return []interface{}{
		&User{},
		&WatchHistory{},
		&Video{},
		&Comment{},
		&Tweet{},
		&Like{},
		&Playlist{},
		&PlaylistVideo{},
		&Subscription{},
	}
}

func AutoMigrate(db interface{}) error {
	type Migrator interface {
		AutoMigrate(dst ...interface{}) error
	}

	migrator, ok := db.(Migrator)
	if !ok {
		return errors.New("database does not support auto migration")
	}

	return migrator.AutoMigrate(Tables()...)
}
