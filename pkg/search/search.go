package search

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

// maxHits 单次检索最多取回的视频 id 数
const maxHits = 1000

// VideoDoc 是写入索引的视频文档
type VideoDoc struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerId     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Indexer 为视频标题和描述提供全文检索
// Enabled 为 false 时调用方应退回到数据库的模糊匹配
type Indexer interface {
	Enabled() bool
	IndexVideo(ctx context.Context, doc *VideoDoc) error
	DeleteVideo(ctx context.Context, id string) error
	SearchVideoIds(ctx context.Context, keyword string) ([]string, error)
}

type Elastic struct {
	client *elastic.Client
	index  string
}

func NewElastic(addr, index string) (*Elastic, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(addr),
		elastic.SetSniff(false),
		elastic.SetHealthcheckInterval(30*time.Second),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "connect elasticsearch %s failed", addr)
	}
	hlog.Infof("Connect Elasticsearch Success, index:%s", index)
	return &Elastic{client: client, index: index}, nil
}

func (e *Elastic) Enabled() bool { return true }

func (e *Elastic) IndexVideo(ctx context.Context, doc *VideoDoc) error {
	_, err := e.client.Index().Index(e.index).Id(doc.Id).BodyJson(doc).Do(ctx)
	return errors.Wrapf(err, "index video %s failed", doc.Id)
}

func (e *Elastic) DeleteVideo(ctx context.Context, id string) error {
	_, err := e.client.Delete().Index(e.index).Id(id).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return errors.Wrapf(err, "delete video %s from index failed", id)
}

func (e *Elastic) SearchVideoIds(ctx context.Context, keyword string) ([]string, error) {
	query := elastic.NewMultiMatchQuery(keyword, "title", "description")
	res, err := e.client.Search().Index(e.index).Query(query).
		Size(maxHits).FetchSource(false).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "search videos failed,keyword:%s", keyword)
	}
	ids, truncated := hitIds(res)
	if truncated {
		hlog.CtxWarnf(ctx, "search keyword %q matched %d videos, only the first %d are listed", keyword, res.Hits.TotalHits.Value, maxHits)
	}
	return ids, nil
}

// hitIds 取出命中的视频 id, 命中总数超过 maxHits 时 truncated 为 true
func hitIds(res *elastic.SearchResult) (ids []string, truncated bool) {
	if res == nil || res.Hits == nil {
		return []string{}, false
	}
	ids = make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.Id)
	}
	truncated = res.Hits.TotalHits != nil && res.Hits.TotalHits.Value > maxHits
	return ids, truncated
}

// Noop 在未配置 Elasticsearch 时使用
type Noop struct{}

func (Noop) Enabled() bool { return false }

func (Noop) IndexVideo(ctx context.Context, doc *VideoDoc) error { return nil }

func (Noop) DeleteVideo(ctx context.Context, id string) error { return nil }

func (Noop) SearchVideoIds(ctx context.Context, keyword string) ([]string, error) { return nil, nil }
