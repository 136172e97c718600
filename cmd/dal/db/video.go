package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

// CreateVideo 显式写入所有列, 否则 is_published=false 会被列默认值覆盖
func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	if err := s.db.WithContext(ctx).Select("*").Create(video).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateVideo failed,title:%s", video.Title)
	}
	return nil
}

func (s *Store) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetVideo failed,id:%s", id)
	}
	return &video, nil
}

// QueryVideos 依次应用检索, 作者, 可见性过滤, 然后排序分页
func (s *Store) QueryVideos(ctx context.Context, q model.VideoQuery) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0)
	var total int64
	if q.Ids != nil && len(q.Ids) == 0 {
		return videos, 0, nil
	}

	tx := s.db.WithContext(ctx).Model(&model.Video{})
	if q.Ids != nil {
		tx = tx.Where("id IN ?", q.Ids)
	}
	if q.Keyword != "" {
		kw := "%" + q.Keyword + "%"
		tx = tx.Where(s.db.Where("title LIKE ?", kw).Or("description LIKE ?", kw))
	}
	if q.OwnerId != "" {
		tx = tx.Where("owner_id = ?", q.OwnerId)
	}
	if q.PublishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.Count(&total).Error; err != nil {
		return videos, 0, errors.Wrapf(err, "QueryVideos count failed,query:%+v", q)
	}

	sortField := q.SortField
	if sortField == "" {
		sortField = "created_at"
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: sortField}, Desc: q.SortDesc}).
		Order("id ASC")
	if q.Limit > 0 {
		tx = tx.Offset(q.Offset).Limit(q.Limit)
	}
	if err := tx.Find(&videos).Error; err != nil {
		return videos, total, errors.Wrapf(err, "QueryVideos failed,query:%+v", q)
	}
	return videos, total, nil
}

func (s *Store) VideosByIds(ctx context.Context, ids []string) (map[string]*model.Video, error) {
	res := make(map[string]*model.Video, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var videos []*model.Video
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "VideosByIds failed,count:%d", len(ids))
	}
	for _, v := range videos {
		res[v.Id] = v
	}
	return res, nil
}

func (s *Store) LatestVideo(ctx context.Context, ownerId string) (*model.Video, error) {
	var video model.Video
	if err := s.db.WithContext(ctx).Where("owner_id = ? AND is_published = ?", ownerId, true).
		Order("created_at DESC").First(&video).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "LatestVideo failed,owner:%s", ownerId)
	}
	return &video, nil
}

func (s *Store) UpdateVideo(ctx context.Context, id string, upd model.VideoUpdate) error {
	fields := map[string]interface{}{
		"title":       upd.Title,
		"description": upd.Description,
	}
	if upd.Thumbnail != nil {
		fields["thumbnail_public_id"] = upd.Thumbnail.PublicId
		fields["thumbnail_url"] = upd.Thumbnail.Url
	}
	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed,id:%s", id)
	}
	return nil
}

func (s *Store) SetPublished(ctx context.Context, id string, published bool) error {
	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		Update("is_published", published).Error; err != nil {
		return errors.Wrapf(err, "SetPublished failed,id:%s", id)
	}
	return nil
}

func (s *Store) IncrementViews(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return errors.Wrapf(err, "IncrementViews failed,id:%s", id)
	}
	return nil
}

func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "DeleteVideo failed,id:%s", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(translate(gorm.ErrRecordNotFound), "DeleteVideo failed,id:%s", id)
	}
	return nil
}
