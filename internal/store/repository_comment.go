package store

import (
	"context"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// commentRepository stores all comments in one map keyed by post ID.
type commentRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided key-value store and logger.
func NewCommentRepository(kv KV, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{kv: kv, logger: logger}
}

func (r *commentRepository) ListForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	all, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}

	comments := all[postID]
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (r *commentRepository) Append(ctx context.Context, postID string, comment models.Comment) error {
	all, err := r.getAll(ctx)
	if err != nil {
		return err
	}

	all[postID] = append(all[postID], comment)

	value, err := encode(all)
	if err != nil {
		return err
	}

	return r.kv.Set(ctx, keyComments, value)
}

func (r *commentRepository) getAll(ctx context.Context) (map[string][]models.Comment, error) {
	raw, _, err := r.kv.Get(ctx, keyComments)
	if err != nil {
		return nil, err
	}

	return decodeOrDefault(r.logger, keyComments, raw, map[string][]models.Comment{}), nil
}
