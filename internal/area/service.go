package area

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"norms-hub/internal/datasource"
	"norms-hub/internal/demostore"
	"norms-hub/internal/errors"
	"norms-hub/internal/identity"
)

// Service is the area catalog facade.
type Service interface {
	List(ctx context.Context) ([]Area, error)
	Names(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input *Area) (*Area, error)
	Update(ctx context.Context, id string, input *Area) (*Area, error)
	Delete(ctx context.Context, id string) error
}

type DefaultService struct {
	repository  Repository
	demo        *demostore.Store
	state       *datasource.State
	readTimeout time.Duration
}

func NewService(
	repository Repository,
	demo *demostore.Store,
	state *datasource.State,
	readTimeout time.Duration,
) *DefaultService {
	return &DefaultService{
		repository:  repository,
		demo:        demo,
		state:       state,
		readTimeout: readTimeout,
	}
}

// List returns the catalog sorted by name with General pinned first.
func (s *DefaultService) List(ctx context.Context) ([]Area, error) {
	return s.fetchAll(ctx), nil
}

// Names returns the current area names in catalog order.
func (s *DefaultService) Names(ctx context.Context) ([]string, error) {
	areas := s.fetchAll(ctx)
	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.Name)
	}
	return names, nil
}

func (s *DefaultService) Create(ctx context.Context, input *Area) (*Area, error) {
	s.ensureMode(ctx)

	if s.state.Demo(datasource.Areas) {
		input.ID = identity.NewDemoID()
		input.CreatedAt = time.Now().UTC()
		areas := append(s.loadDemo(), *input)
		Sort(areas)
		s.persistDemo(areas)
		return input, nil
	}

	if err := s.repository.Create(ctx, input); err != nil {
		return nil, err
	}
	s.fetchAll(ctx)
	return input, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, input *Area) (*Area, error) {
	s.ensureMode(ctx)

	if !identity.IsRemoteID(id) || s.state.Demo(datasource.Areas) {
		return s.updateDemo(id, input)
	}

	if err := s.repository.Update(ctx, id, input); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Area not found", err)
		}
		return nil, err
	}
	s.fetchAll(ctx)
	input.ID = id
	return input, nil
}

// Delete removes an area from the catalog. Norms and profiles that still
// reference its name are left untouched.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	s.ensureMode(ctx)

	if s.state.Demo(datasource.Areas) {
		areas := s.loadDemo()
		kept := make([]Area, 0, len(areas))
		for _, a := range areas {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		if len(kept) == len(areas) {
			return errors.NotFound("Area not found", nil)
		}
		s.persistDemo(kept)
		return nil
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.fetchAll(ctx)
	return nil
}

func (s *DefaultService) fetchAll(ctx context.Context) []Area {
	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	remote, err := s.repository.List(rctx)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("Remote area read failed, falling back to demo data")
	}

	if datasource.IsDemoResult(len(remote), err) {
		s.state.SetDemo(datasource.Areas, true)
		return s.loadDemo()
	}

	s.state.SetDemo(datasource.Areas, false)
	if err := s.demo.Clear(string(datasource.Areas)); err != nil {
		log.Warn().Err(err).Msg("Failed to clear demo areas")
	}
	Sort(remote)
	return remote
}

func (s *DefaultService) ensureMode(ctx context.Context) {
	if !s.state.Known(datasource.Areas) {
		s.fetchAll(ctx)
	}
}

func (s *DefaultService) loadDemo() []Area {
	var areas []Area
	ok, err := s.demo.Load(string(datasource.Areas), &areas)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load demo areas, reseeding")
	}
	if !ok || err != nil {
		areas = DemoSeed()
		s.persistDemo(areas)
	}
	Sort(areas)
	return areas
}

func (s *DefaultService) persistDemo(areas []Area) {
	if err := s.demo.Save(string(datasource.Areas), areas); err != nil {
		log.Error().Err(err).Msg("Failed to persist demo areas")
	}
}

func (s *DefaultService) updateDemo(id string, input *Area) (*Area, error) {
	areas := s.loadDemo()
	for i := range areas {
		if areas[i].ID == id {
			areas[i].Name = input.Name
			areas[i].Description = input.Description
			s.persistDemo(areas)
			return &areas[i], nil
		}
	}
	return nil, errors.NotFound("Area not found", nil)
}
