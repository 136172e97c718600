package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type UserService struct {
	ctx  context.Context
	deps *Deps
}

func NewUserService(ctx context.Context, deps *Deps) *UserService {
	return &UserService{ctx: ctx, deps: deps}
}

type RegisterRequest struct {
	UserName   string
	FullName   string
	Email      string
	Password   string
	AvatarPath string
}

// Register 用户名统一转为小写, 头像可选
func (s *UserService) Register(req *RegisterRequest) (*model.User, error) {
	defer removeStaged(req.AvatarPath)

	for _, f := range []struct{ name, value string }{
		{"username", req.UserName},
		{"fullName", req.FullName},
		{"email", req.Email},
		{"password", req.Password},
	} {
		if err := RequireText(f.name, f.value); err != nil {
			return nil, err
		}
	}
	username := strings.ToLower(strings.TrimSpace(req.UserName))
	email := strings.TrimSpace(req.Email)

	if _, err := s.deps.Store.GetUserByLogin(s.ctx, username); err == nil {
		return nil, errno.ValidationFailed.WithMessage("User with email or username already exists")
	} else if !dal.IsNotFound(err) {
		return nil, errors.WithMessage(err, "register failed")
	}
	if _, err := s.deps.Store.GetUserByLogin(s.ctx, email); err == nil {
		return nil, errno.ValidationFailed.WithMessage("User with email or username already exists")
	} else if !dal.IsNotFound(err) {
		return nil, errors.WithMessage(err, "register failed")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password failed")
	}
	user := &model.User{
		Id:       uuid.NewString(),
		UserName: username,
		FullName: req.FullName,
		Email:    email,
		Password: hashed,
	}
	if req.AvatarPath != "" {
		avatar, err := s.deps.Media.Upload(s.ctx, req.AvatarPath, constants.MediaKindImage)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "upload avatar failed:%+v", err)
			return nil, errno.UpstreamFailure.WithMessage("Failed to upload avatar")
		}
		user.Avatar = mediaRef(avatar)
	}

	if err = s.deps.Store.CreateUser(s.ctx, user); err != nil {
		s.deps.deleteMedia(s.ctx, user.Avatar.PublicId, constants.MediaKindImage)
		if dal.IsDuplicate(err) {
			return nil, errno.ValidationFailed.WithMessage("User with email or username already exists")
		}
		return nil, errors.WithMessage(err, "register failed")
	}
	return user, nil
}

// Authenticate 按用户名或邮箱登录, 成功时返回用户 id
func (s *UserService) Authenticate(login, password string) (string, error) {
	user, err := s.deps.Store.GetUserByLogin(s.ctx, strings.ToLower(strings.TrimSpace(login)))
	if err != nil && dal.IsNotFound(err) {
		// 邮箱可能包含大写
		user, err = s.deps.Store.GetUserByLogin(s.ctx, strings.TrimSpace(login))
	}
	if err != nil {
		if dal.IsNotFound(err) {
			return "", errno.Unauthenticated.WithMessage("Invalid user credentials")
		}
		return "", errors.WithMessage(err, "login failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return "", errno.Unauthenticated.WithMessage("Invalid user credentials")
	}
	return user.Id, nil
}

func (s *UserService) CurrentUser(principal string) (*model.User, error) {
	user, err := s.deps.Store.GetUser(s.ctx, principal)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}
	return user, nil
}

func (s *UserService) UpdateAccount(principal, fullName, email string) (*model.User, error) {
	if err := RequireText("fullName", fullName); err != nil {
		return nil, err
	}
	if err := RequireText("email", email); err != nil {
		return nil, err
	}
	if err := s.deps.Store.UpdateAccount(s.ctx, principal, fullName, strings.TrimSpace(email)); err != nil {
		if dal.IsDuplicate(err) {
			return nil, errno.ValidationFailed.WithMessage("Email is already in use")
		}
		return nil, notFoundOr(err, "User")
	}
	return s.CurrentUser(principal)
}

// UpdateAvatar 新头像落库后再删除旧头像
func (s *UserService) UpdateAvatar(principal, avatarPath string) (*model.User, error) {
	defer removeStaged(avatarPath)
	if avatarPath == "" {
		return nil, errno.ValidationFailed.WithMessage("avatar file is required")
	}
	user, err := s.CurrentUser(principal)
	if err != nil {
		return nil, err
	}
	avatar, err := s.deps.Media.Upload(s.ctx, avatarPath, constants.MediaKindImage)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload avatar failed:%+v", err)
		return nil, errno.UpstreamFailure.WithMessage("Failed to upload avatar")
	}
	if err = s.deps.Store.UpdateAvatar(s.ctx, principal, mediaRef(avatar)); err != nil {
		s.deps.deleteMedia(s.ctx, avatar.PublicId, constants.MediaKindImage)
		return nil, notFoundOr(err, "User")
	}
	s.deps.deleteMedia(s.ctx, user.Avatar.PublicId, constants.MediaKindImage)
	return s.CurrentUser(principal)
}

func (s *UserService) ChannelProfile(principal, username string) (*model.ChannelProfile, error) {
	if err := RequireText("username", username); err != nil {
		return nil, err
	}
	user, err := s.deps.Store.GetUserByName(s.ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, notFoundOr(err, "Channel")
	}
	subscribers, err := s.deps.Store.CountSubscribers(s.ctx, []string{user.Id})
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "channel")
	}
	subscribedTo, err := s.deps.Store.CountSubscribedTo(s.ctx, user.Id)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "channel")
	}
	followed, err := s.deps.Store.SubscribedTo(s.ctx, principal, []string{user.Id})
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "channel")
	}
	return &model.ChannelProfile{
		User:                      user,
		SubscribersCount:          subscribers[user.Id],
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              followed[user.Id],
	}, nil
}

// WatchHistory 按首次观看的顺序返回, 已删除的视频跳过
func (s *UserService) WatchHistory(principal string) ([]model.VideoListItem, error) {
	ids, err := s.deps.Store.WatchHistory(s.ctx, principal)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "watch history")
	}
	byId, err := s.deps.Store.VideosByIds(s.ctx, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "watch history")
	}
	videos := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byId[id]; ok {
			videos = append(videos, v)
		}
	}
	items, err := videoItems(s.ctx, s.deps.Store, videos)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "watch history")
	}
	return items, nil
}
