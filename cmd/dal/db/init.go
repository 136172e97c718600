package db

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	DB, err = gorm.Open(mysql.Open(utils.GetMysqlDsn()),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	hlog.Info("Starting tables migration...")
	if err = model.AutoMigrate(DB); err != nil {
		panic(err)
	}
	hlog.Info("Tables migration completed successfully")
}

// Store 基于 gorm 实现 dal.Store
type Store struct {
	db *gorm.DB
}

var _ dal.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB failed")
	}
	return errors.Wrap(sqlDB.PingContext(ctx), "ping mysql failed")
}

// translate 把 gorm 的错误映射为 dal 层的哨兵错误, 保留原始信息
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.WithMessage(dal.ErrRecordNotFound, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.WithMessage(dal.ErrDuplicate, err.Error())
	}
	return err
}
