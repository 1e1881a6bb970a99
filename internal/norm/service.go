package norm

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"norms-hub/internal/datasource"
	"norms-hub/internal/demostore"
	"norms-hub/internal/errors"
	"norms-hub/internal/identity"
	"norms-hub/internal/user"
)

// ListOptions narrows a norm listing. Area is an explicit scope request and
// interacts with the viewer's role (see FilterVisible); Query is a free-text
// filter.
type ListOptions struct {
	Area  string
	Query string
}

// Service is the norm facade. It owns the remote/demo mode decision for the
// documents collection and applies the visibility policy to every read.
type Service interface {
	List(ctx context.Context, viewer user.User, opts ListOptions) ([]Norm, error)
	Get(ctx context.Context, viewer user.User, id string) (*Norm, error)
	Create(ctx context.Context, input *Norm) (*Norm, error)
	Update(ctx context.Context, id string, input *Norm) (*Norm, error)
	Delete(ctx context.Context, id string) error
}

// AreaCatalog resolves the current set of area names for reference checks.
type AreaCatalog interface {
	Names(ctx context.Context) ([]string, error)
}

type DefaultService struct {
	repository  Repository
	demo        *demostore.Store
	state       *datasource.State
	catalog     AreaCatalog
	readTimeout time.Duration
}

func NewService(
	repository Repository,
	demo *demostore.Store,
	state *datasource.State,
	catalog AreaCatalog,
	readTimeout time.Duration,
) *DefaultService {
	return &DefaultService{
		repository:  repository,
		demo:        demo,
		state:       state,
		catalog:     catalog,
		readTimeout: readTimeout,
	}
}

// List returns the norms the viewer may see, most recently updated first.
func (s *DefaultService) List(ctx context.Context, viewer user.User, opts ListOptions) ([]Norm, error) {
	visible := FilterVisible(s.fetchAll(ctx), viewer, opts.Area)
	if opts.Query == "" {
		return visible, nil
	}

	matched := make([]Norm, 0, len(visible))
	for _, n := range visible {
		if n.MatchesQuery(opts.Query) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Get returns a single norm, subject to the viewer's visibility.
func (s *DefaultService) Get(ctx context.Context, viewer user.User, id string) (*Norm, error) {
	for _, n := range FilterVisible(s.fetchAll(ctx), viewer, "") {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, errors.NotFound("Norm not found", nil)
}

func (s *DefaultService) Create(ctx context.Context, input *Norm) (*Norm, error) {
	s.ensureMode(ctx)
	s.warnUnknownArea(ctx, input.Area)
	input.normalize()

	if s.state.Demo(datasource.Norms) {
		input.ID = identity.NewDemoID()
		input.UpdatedAt = time.Now().UTC()
		norms := s.loadDemo()
		norms = append([]Norm{*input}, norms...)
		s.persistDemo(norms)
		return input, nil
	}

	if err := s.repository.Create(ctx, input); err != nil {
		return nil, err
	}
	// Resynchronize mode and ordering after a remote write.
	s.fetchAll(ctx)
	return input, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, input *Norm) (*Norm, error) {
	s.ensureMode(ctx)
	s.warnUnknownArea(ctx, input.Area)
	input.normalize()

	// Demo-created records never become remote update targets.
	if !identity.IsRemoteID(id) || s.state.Demo(datasource.Norms) {
		return s.updateDemo(id, input)
	}

	if err := s.repository.Update(ctx, id, input); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Norm not found", err)
		}
		return nil, err
	}
	s.fetchAll(ctx)
	input.ID = id
	return input, nil
}

// Delete removes a norm. A remote delete failure surfaces to the caller with
// the store untouched; the next fetch reconciles the listing.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	s.ensureMode(ctx)

	if s.state.Demo(datasource.Norms) {
		norms := s.loadDemo()
		kept := make([]Norm, 0, len(norms))
		for _, n := range norms {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(norms) {
			return errors.NotFound("Norm not found", nil)
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

// fetchAll reads the remote collection, recomputes the mode from the result,
// and returns the authoritative set. Remote read failures never propagate;
// they degrade to demo data.
func (s *DefaultService) fetchAll(ctx context.Context) []Norm {
	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	remote, err := s.repository.List(rctx)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("Remote norm read failed, falling back to demo data")
	}

	if datasource.IsDemoResult(len(remote), err) {
		s.state.SetDemo(datasource.Norms, true)
		return s.loadDemo()
	}

	s.state.SetDemo(datasource.Norms, false)
	if err := s.demo.Clear(string(datasource.Norms)); err != nil {
		log.Warn().Err(err).Msg("Failed to clear demo norms")
	}
	for i := range remote {
		remote[i].normalize()
	}
	return remote
}

func (s *DefaultService) ensureMode(ctx context.Context) {
	if !s.state.Known(datasource.Norms) {
		s.fetchAll(ctx)
	}
}

func (s *DefaultService) loadDemo() []Norm {
	var norms []Norm
	ok, err := s.demo.Load(string(datasource.Norms), &norms)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load demo norms, reseeding")
	}
	if !ok || err != nil {
		norms = DemoSeed()
		s.persistDemo(norms)
	}
	return norms
}

func (s *DefaultService) persistDemo(norms []Norm) {
	if err := s.demo.Save(string(datasource.Norms), norms); err != nil {
		log.Error().Err(err).Msg("Failed to persist demo norms")
	}
}

func (s *DefaultService) updateDemo(id string, input *Norm) (*Norm, error) {
	norms := s.loadDemo()
	for i := range norms {
		if norms[i].ID == id {
			norms[i].Title = input.Title
			norms[i].Code = input.Code
			norms[i].Version = input.Version
			norms[i].Description = input.Description
			norms[i].Content = input.Content
			norms[i].FileURL = input.FileURL
			norms[i].Area = input.Area
			norms[i].Tags = input.Tags
			norms[i].Status = input.Status
			norms[i].UpdatedAt = time.Now().UTC()
			s.persistDemo(norms)
			return &norms[i], nil
		}
	}
	return nil, errors.NotFound("Norm not found", nil)
}

func (s *DefaultService) warnUnknownArea(ctx context.Context, name string) {
	if s.catalog == nil || name == "" {
		return
	}
	names, err := s.catalog.Names(ctx)
	if err != nil {
		return
	}
	if !slices.Contains(names, name) {
		log.Warn().Str("area", name).Msg("Norm references an area missing from the catalog")
	}
}
