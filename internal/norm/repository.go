package norm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"norms-hub/internal/db"
)

// Repository is the remote gateway for the documents collection.
type Repository interface {
	List(ctx context.Context) ([]Norm, error)
	Create(ctx context.Context, n *Norm) error
	Update(ctx context.Context, id string, n *Norm) error
	Delete(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new norm repository. The handle may be nil when no
// store connection exists; every operation then reports ErrUnavailable.
func NewRepository(gdb *gorm.DB) Repository {
	return &RepositoryImpl{db: gdb}
}

func (r *RepositoryImpl) List(ctx context.Context) ([]Norm, error) {
	if r.db == nil {
		return nil, db.ErrUnavailable
	}
	var norms []Norm
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&norms).Error
	if err != nil {
		return nil, err
	}
	return norms, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, n *Norm) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *RepositoryImpl) Update(ctx context.Context, id string, n *Norm) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	n.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&Norm{}).Where("id = ?", id).
		Select("title", "code", "version", "description", "content", "file_url", "area", "tags", "status", "updated_at").
		Updates(n)
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
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Norm{}).Error
}
