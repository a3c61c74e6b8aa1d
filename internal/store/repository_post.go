package store

import (
	"context"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// postRepository stores locally authored posts keyed by slug.
type postRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// key-value store and logger.
func NewPostRepository(kv KV, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{kv: kv, logger: logger}
}

func (r *postRepository) GetAll(ctx context.Context) (map[string]models.Post, error) {
	raw, _, err := r.kv.Get(ctx, keyLocalPosts)
	if err != nil {
		return nil, err
	}

	return decodeOrDefault(r.logger, keyLocalPosts, raw, map[string]models.Post{}), nil
}

func (r *postRepository) Save(ctx context.Context, post models.Post) error {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	posts[post.ID] = post

	value, err := encode(posts)
	if err != nil {
		return err
	}

	return r.kv.Set(ctx, keyLocalPosts, value)
}
