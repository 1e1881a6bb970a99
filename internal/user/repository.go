package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"norms-hub/internal/db"
)

// Repository is the remote gateway for the profiles collection.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, id string, u *User) error
	Delete(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new profile repository. The handle may be nil when
// no store connection exists; every operation then reports ErrUnavailable.
func NewRepository(gdb *gorm.DB) Repository {
	return &RepositoryImpl{db: gdb}
}

func (r *RepositoryImpl) List(ctx context.Context) ([]User, error) {
	if r.db == nil {
		return nil, db.ErrUnavailable
	}
	var users []User
	err := r.db.WithContext(ctx).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, u *User) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *RepositoryImpl) Update(ctx context.Context, id string, u *User) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Select("name", "email", "role", "area").
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&User{}).Error
}
