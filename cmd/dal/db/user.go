package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateUser failed,username:%s", user.UserName)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetUser failed,id:%s", id)
	}
	return &user, nil
}

func (s *Store) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetUserByName failed,username:%s", username)
	}
	return &user, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("user_name = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetUserByLogin failed,login:%s", login)
	}
	return &user, nil
}

func (s *Store) UsersByIds(ctx context.Context, ids []string) (map[string]*model.User, error) {
	res := make(map[string]*model.User, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var users []*model.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "UsersByIds failed,count:%d", len(ids))
	}
	for _, u := range users {
		res[u.Id] = u
	}
	return res, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id, fullName, email string) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"full_name": fullName, "email": email})
	if res.Error != nil {
		return errors.Wrapf(translate(res.Error), "UpdateAccount failed,id:%s", id)
	}
	return nil
}

func (s *Store) UpdateAvatar(ctx context.Context, id string, avatar model.MediaRef) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"avatar_public_id": avatar.PublicId, "avatar_url": avatar.Url})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "UpdateAvatar failed,id:%s", id)
	}
	return nil
}

// AddWatchHistory 已存在的记录保持原位置
func (s *Store) AddWatchHistory(ctx context.Context, userId, videoId string) error {
	item := &model.WatchHistory{Id: uuid.NewString(), UserId: userId, VideoId: videoId}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error
	return errors.Wrapf(err, "AddWatchHistory failed,user:%s,video:%s", userId, videoId)
}

func (s *Store) WatchHistory(ctx context.Context, userId string) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&model.WatchHistory{}).Where("user_id = ?", userId).
		Order("created_at ASC").Order("id ASC").Pluck("video_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "WatchHistory failed,user:%s", userId)
	}
	return ids, nil
}
