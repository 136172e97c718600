package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/mq"
)

// 主记录删除之后再清理依赖数据, 这里的失败只记录日志, 不回滚主记录

func (d *Deps) cascadeVideo(ctx context.Context, video *model.Video, principal string) {
	commentIds, err := d.Store.CommentIdsByVideo(ctx, video.Id)
	if err != nil {
		hlog.CtxErrorf(ctx, "cascade video %s: list comments failed:%v", video.Id, err)
	}
	if err = d.Store.DeleteTargetLikes(ctx, model.TargetComment, commentIds); err != nil {
		hlog.CtxErrorf(ctx, "cascade video %s: delete comment likes failed:%v", video.Id, err)
	}
	if err = d.Store.DeleteVideoComments(ctx, video.Id); err != nil {
		hlog.CtxErrorf(ctx, "cascade video %s: delete comments failed:%v", video.Id, err)
	}
	if err = d.Store.DeleteTargetLikes(ctx, model.TargetVideo, []string{video.Id}); err != nil {
		hlog.CtxErrorf(ctx, "cascade video %s: delete likes failed:%v", video.Id, err)
	}
	if err = d.Store.RemoveVideoFromPlaylists(ctx, video.Id); err != nil {
		hlog.CtxErrorf(ctx, "cascade video %s: remove from playlists failed:%v", video.Id, err)
	}
	if err = d.Search.DeleteVideo(ctx, video.Id); err != nil {
		hlog.CtxWarnf(ctx, "cascade video %s: remove from index failed:%v", video.Id, err)
	}
	d.deleteMedia(ctx, video.VideoFile.PublicId, constants.MediaKindVideo)
	d.deleteMedia(ctx, video.Thumbnail.PublicId, constants.MediaKindImage)

	d.publish(ctx, &mq.Event{
		Type:       constants.EventVideoDeleted,
		ActorId:    principal,
		TargetType: string(model.TargetVideo),
		TargetId:   video.Id,
	})
}

func (d *Deps) cascadeComment(ctx context.Context, commentId string) {
	if err := d.Store.DeleteTargetLikes(ctx, model.TargetComment, []string{commentId}); err != nil {
		hlog.CtxErrorf(ctx, "cascade comment %s: delete likes failed:%v", commentId, err)
	}
}

func (d *Deps) cascadeTweet(ctx context.Context, tweetId string) {
	if err := d.Store.DeleteTargetLikes(ctx, model.TargetTweet, []string{tweetId}); err != nil {
		hlog.CtxErrorf(ctx, "cascade tweet %s: delete likes failed:%v", tweetId, err)
	}
}

func (d *Deps) deleteMedia(ctx context.Context, publicId, kind string) {
	if publicId == "" {
		return
	}
	if err := d.Media.Delete(ctx, publicId, kind); err != nil {
		hlog.CtxWarnf(ctx, "delete media %s failed:%v", publicId, err)
	}
}
