package area

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"norms-hub/internal/db"
)

// Repository is the remote gateway for the areas collection.
type Repository interface {
	List(ctx context.Context) ([]Area, error)
	Create(ctx context.Context, a *Area) error
	Update(ctx context.Context, id string, a *Area) error
	Delete(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	db *gorm.DB
}

func NewRepository(gdb *gorm.DB) Repository {
	return &RepositoryImpl{db: gdb}
}

// List reads the area catalog. A missing areas table and a timed-out read are
// both reported as an empty catalog; other failures propagate.
func (r *RepositoryImpl) List(ctx context.Context) ([]Area, error) {
	if r.db == nil {
		return nil, db.ErrUnavailable
	}
	var areas []Area
	err := r.db.WithContext(ctx).Order("name ASC").Find(&areas).Error
	if err != nil {
		if emptyCatalog(err) {
			return []Area{}, nil
		}
		return nil, err
	}
	Sort(areas)
	return areas, nil
}

// emptyCatalog reports whether a catalog read failure should be presented as
// an empty catalog instead of an error.
func emptyCatalog(err error) bool {
	return db.IsMissingTable(err) || errors.Is(err, context.DeadlineExceeded)
}

func (r *RepositoryImpl) Create(ctx context.Context, a *Area) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *RepositoryImpl) Update(ctx context.Context, id string, a *Area) error {
	if r.db == nil {
		return db.ErrUnavailable
	}
	res := r.db.WithContext(ctx).Model(&Area{}).Where("id = ?", id).
		Select("name", "description").
		Updates(a)
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
	// No cascade: norms and profiles keep their area name as written.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Area{}).Error
}
