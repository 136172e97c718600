package service

import (
	"context"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/search"
)

type VideoService struct {
	ctx  context.Context
	deps *Deps
}

func NewVideoService(ctx context.Context, deps *Deps) *VideoService {
	return &VideoService{ctx: ctx, deps: deps}
}

type ListVideosRequest struct {
	Principal string
	Page      int64
	Limit     int64
	Query     string
	SortBy    string
	SortType  string
	UserId    string
}

// ListVideos 只返回已发布的视频, 结果为空时同样视为成功
func (s *VideoService) ListVideos(req *ListVideosRequest) (*model.Page[model.VideoListItem], error) {
	if req.UserId != "" {
		if err := CheckId(req.UserId, "user"); err != nil {
			return nil, err
		}
	}
	p := model.NewPagination(req.Page, req.Limit)
	q := model.VideoQuery{
		OwnerId:       req.UserId,
		PublishedOnly: true,
		SortField:     "created_at",
		SortDesc:      true,
		Offset:        p.Offset(),
		Limit:         p.Limit,
	}
	if field, ok := constants.VideoSortFields[req.SortBy]; ok {
		q.SortField = field
		q.SortDesc = req.SortType != constants.SortAsc
	}
	if req.Query != "" {
		if err := s.applySearch(&q, req.Query); err != nil {
			return nil, fetchFailed(s.ctx, err, "videos")
		}
	}

	videos, total, err := s.deps.Store.QueryVideos(s.ctx, q)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "videos")
	}
	items, err := videoItems(s.ctx, s.deps.Store, videos)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "videos")
	}
	return model.NewPage(items, total, p), nil
}

// applySearch 优先使用全文索引, 索引不可用时退回到标题和描述的模糊匹配
// 索引只返回前 1000 个命中, 超出部分不计入 totalDocs
func (s *VideoService) applySearch(q *model.VideoQuery, keyword string) error {
	if !s.deps.Search.Enabled() {
		q.Keyword = keyword
		return nil
	}
	ids, err := s.deps.Search.SearchVideoIds(s.ctx, keyword)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "search index unavailable, fall back to store:%v", err)
		q.Keyword = keyword
		return nil
	}
	if ids == nil {
		ids = []string{}
	}
	q.Ids = ids
	return nil
}

type PublishVideoRequest struct {
	Principal     string
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

func (s *VideoService) PublishVideo(req *PublishVideoRequest) (*model.Video, error) {
	defer removeStaged(req.VideoPath, req.ThumbnailPath)

	if err := RequireText("title", req.Title); err != nil {
		return nil, err
	}
	if err := RequireText("description", req.Description); err != nil {
		return nil, err
	}
	if req.VideoPath == "" {
		return nil, errno.ValidationFailed.WithMessage("video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.ValidationFailed.WithMessage("thumbnail is required")
	}

	thumbnail, err := s.deps.Media.Upload(s.ctx, req.ThumbnailPath, constants.MediaKindImage)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload thumbnail failed:%+v", err)
		return nil, errno.UpstreamFailure.WithMessage("Failed to upload thumbnail")
	}
	videoFile, err := s.deps.Media.Upload(s.ctx, req.VideoPath, constants.MediaKindVideo)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload video failed:%+v", err)
		s.deps.deleteMedia(s.ctx, thumbnail.PublicId, constants.MediaKindImage)
		return nil, errno.UpstreamFailure.WithMessage("Failed to upload video")
	}

	video := &model.Video{
		Id:          uuid.NewString(),
		VideoFile:   mediaRef(videoFile),
		Thumbnail:   mediaRef(thumbnail),
		Title:       req.Title,
		Description: req.Description,
		Duration:    videoFile.Duration,
		IsPublished: true,
		OwnerId:     req.Principal,
	}
	if err = s.deps.Store.CreateVideo(s.ctx, video); err != nil {
		s.deps.deleteMedia(s.ctx, videoFile.PublicId, constants.MediaKindVideo)
		s.deps.deleteMedia(s.ctx, thumbnail.PublicId, constants.MediaKindImage)
		return nil, errors.WithMessage(err, "publish video failed")
	}

	s.index(video)
	s.deps.publish(s.ctx, &mq.Event{
		Type:       constants.EventVideoPublished,
		ActorId:    req.Principal,
		TargetType: string(model.TargetVideo),
		TargetId:   video.Id,
	})
	return video, nil
}

// GetVideo 返回详情后播放数加一并记录观看历史, 这两步失败只记录日志
func (s *VideoService) GetVideo(principal, videoId string) (*model.VideoDetail, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	video, err := s.deps.Store.GetVideo(s.ctx, videoId)
	if err != nil {
		if dal.IsNotFound(err) {
			return nil, errno.NotFound.WithMessage("Video not found")
		}
		return nil, fetchFailed(s.ctx, err, "video")
	}

	detail, err := s.buildDetail(principal, video)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "video")
	}

	if err = s.deps.Store.IncrementViews(s.ctx, video.Id); err != nil {
		hlog.CtxErrorf(s.ctx, "increment views of %s failed:%v", video.Id, err)
	}
	if principal != "" {
		if err = s.deps.Store.AddWatchHistory(s.ctx, principal, video.Id); err != nil {
			hlog.CtxErrorf(s.ctx, "add watch history of %s failed:%v", video.Id, err)
		}
	}
	return detail, nil
}

func (s *VideoService) buildDetail(principal string, video *model.Video) (*model.VideoDetail, error) {
	stats, err := loadLikeStats(s.ctx, s.deps.Store, principal, model.TargetVideo, []string{video.Id})
	if err != nil {
		return nil, err
	}
	owners, err := ownerSummaries(s.ctx, s.deps.Store, []string{video.OwnerId})
	if err != nil {
		return nil, err
	}
	subscribers, err := s.deps.Store.CountSubscribers(s.ctx, []string{video.OwnerId})
	if err != nil {
		return nil, err
	}
	subscribed, err := s.deps.Store.SubscribedTo(s.ctx, principal, []string{video.OwnerId})
	if err != nil {
		return nil, err
	}
	return &model.VideoDetail{
		Id:          video.Id,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Views:       video.Views,
		Duration:    video.Duration,
		IsPublished: video.IsPublished,
		CreatedAt:   video.CreatedAt,
		Owner: model.ChannelSummary{
			OwnerSummary:     owners[video.OwnerId],
			SubscribersCount: subscribers[video.OwnerId],
			IsSubscribed:     subscribed[video.OwnerId],
		},
		LikesCount: stats.counts[video.Id],
		IsLiked:    stats.liked[video.Id],
	}, nil
}

type UpdateVideoRequest struct {
	Principal     string
	VideoId       string
	Title         string
	Description   string
	ThumbnailPath string
}

// UpdateVideo 新封面上传成功并落库后才删除旧封面
func (s *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	defer removeStaged(req.ThumbnailPath)

	video, err := s.ownedVideo(req.Principal, req.VideoId, "update this video")
	if err != nil {
		return nil, err
	}
	if err = RequireText("title", req.Title); err != nil {
		return nil, err
	}
	if err = RequireText("description", req.Description); err != nil {
		return nil, err
	}

	upd := model.VideoUpdate{Title: req.Title, Description: req.Description}
	if req.ThumbnailPath != "" {
		thumbnail, err := s.deps.Media.Upload(s.ctx, req.ThumbnailPath, constants.MediaKindImage)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "upload thumbnail failed:%+v", err)
			return nil, errno.UpstreamFailure.WithMessage("Failed to upload thumbnail")
		}
		ref := mediaRef(thumbnail)
		upd.Thumbnail = &ref
	}
	if err = s.deps.Store.UpdateVideo(s.ctx, video.Id, upd); err != nil {
		if upd.Thumbnail != nil {
			s.deps.deleteMedia(s.ctx, upd.Thumbnail.PublicId, constants.MediaKindImage)
		}
		return nil, errors.WithMessage(err, "update video failed")
	}
	if upd.Thumbnail != nil {
		s.deps.deleteMedia(s.ctx, video.Thumbnail.PublicId, constants.MediaKindImage)
	}

	updated, err := s.deps.Store.GetVideo(s.ctx, video.Id)
	if err != nil {
		return nil, notFoundOr(err, "Video")
	}
	s.index(updated)
	return updated, nil
}

func (s *VideoService) DeleteVideo(principal, videoId string) error {
	video, err := s.ownedVideo(principal, videoId, "delete this video")
	if err != nil {
		return err
	}
	if err = s.deps.Store.DeleteVideo(s.ctx, video.Id); err != nil {
		return notFoundOr(err, "Video")
	}
	s.deps.cascadeVideo(s.ctx, video, principal)
	return nil
}

func (s *VideoService) TogglePublishStatus(principal, videoId string) (*model.Video, error) {
	video, err := s.ownedVideo(principal, videoId, "change the publish status of this video")
	if err != nil {
		return nil, err
	}
	if err = s.deps.Store.SetPublished(s.ctx, video.Id, !video.IsPublished); err != nil {
		return nil, errors.WithMessage(err, "toggle publish status failed")
	}
	updated, err := s.deps.Store.GetVideo(s.ctx, video.Id)
	if err != nil {
		return nil, notFoundOr(err, "Video")
	}
	return updated, nil
}

// ownedVideo 依次校验 id, 存在性和所有权
func (s *VideoService) ownedVideo(principal, videoId, action string) (*model.Video, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	video, err := s.deps.Store.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, notFoundOr(err, "Video")
	}
	if err = Authorize(video.OwnerId, principal, action); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) index(video *model.Video) {
	err := s.deps.Search.IndexVideo(s.ctx, &search.VideoDoc{
		Id:          video.Id,
		Title:       video.Title,
		Description: video.Description,
		OwnerId:     video.OwnerId,
		CreatedAt:   video.CreatedAt,
	})
	if err != nil {
		hlog.CtxWarnf(s.ctx, "index video %s failed:%v", video.Id, err)
	}
}

func mediaRef(obj *oss.Object) model.MediaRef {
	return model.MediaRef{PublicId: obj.PublicId, Url: obj.Url}
}

// removeStaged 删除上传时暂存在本地的文件, 已被删除的文件忽略
func removeStaged(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			hlog.Warnf("remove staged file %s failed:%v", p, err)
		}
	}
}
