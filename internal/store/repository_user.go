package store

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// userRepository is the [KV]-backed implementation of [UserRepository].
//
// The user collection is stored whole under a single key, so every method is
// a read-modify-write over the full slice. Reads pass through the schema
// migration: any legacy record is upgraded in memory and, if at least one
// record changed, the migrated collection is persisted once before the read
// returns.
type userRepository struct {
	kv     KV
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// key-value store and logger.
func NewUserRepository(kv KV, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	raw, _, err := r.kv.Get(ctx, keyUsers)
	if err != nil {
		return nil, err
	}

	records := decodeOrDefault(r.logger, keyUsers, raw, []userRecord{})

	users := make([]models.User, 0, len(records))
	migrationNeeded := false
	now := r.now()
	for _, rec := range records {
		user, changed := upgradeUserRecord(rec, now)
		migrationNeeded = migrationNeeded || changed
		users = append(users, user)
	}

	// write the upgraded collection back exactly once per read
	if migrationNeeded && len(users) > 0 {
		if err := r.saveAll(ctx, users); err != nil {
			return nil, err
		}
		r.logger.Info().Int("count", len(users)).Msg("user records migrated to current schema")
	}

	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}

	return r.saveAll(ctx, append(users, user))
}

func (r *userRepository) Update(ctx context.Context, user models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.Email == user.Email {
			users[i] = user
			return r.saveAll(ctx, users)
		}
	}

	return ErrUserNotFound
}

func (r *userRepository) SetProfileImage(ctx context.Context, email, dataURI string) error {
	return r.updateImage(ctx, email, &dataURI)
}

func (r *userRepository) RemoveProfileImage(ctx context.Context, email string) error {
	return r.updateImage(ctx, email, nil)
}

func (r *userRepository) updateImage(ctx context.Context, email string, image *string) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.Email == email {
			users[i].ProfileImage = image
			return r.saveAll(ctx, users)
		}
	}

	return ErrUserNotFound
}

func (r *userRepository) saveAll(ctx context.Context, users []models.User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toUserRecord(u))
	}

	value, err := encode(records)
	if err != nil {
		return err
	}

	return r.kv.Set(ctx, keyUsers, value)
}
