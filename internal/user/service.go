package user

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
)

// Service is the profile facade. It owns the remote/demo mode decision for
// the users collection and exposes one uniform CRUD surface regardless of
// which store is authoritative.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, input *User) (*User, error)
	Update(ctx context.Context, id string, input *User) (*User, error)
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

// List returns the authoritative profile set, recomputing the collection mode.
func (s *DefaultService) List(ctx context.Context) ([]User, error) {
	return s.fetchAll(ctx), nil
}

func (s *DefaultService) Get(ctx context.Context, id string) (*User, error) {
	for _, u := range s.fetchAll(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errors.NotFound("Profile not found", nil)
}

func (s *DefaultService) Create(ctx context.Context, input *User) (*User, error) {
	s.ensureMode(ctx)
	s.warnUnknownArea(ctx, input.Area)

	if s.state.Demo(datasource.Users) {
		input.ID = identity.NewDemoID()
		input.CreatedAt = time.Now().UTC()
		users := s.loadDemo()
		users = append([]User{*input}, users...)
		s.persistDemo(users)
		return input, nil
	}

	if err := s.repository.Create(ctx, input); err != nil {
		return nil, err
	}
	// Resynchronize mode and ordering after a remote write.
	s.fetchAll(ctx)
	return input, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, input *User) (*User, error) {
	s.ensureMode(ctx)
	s.warnUnknownArea(ctx, input.Area)

	// Demo-created records never become remote update targets.
	if !identity.IsRemoteID(id) || s.state.Demo(datasource.Users) {
		return s.updateDemo(id, input)
	}

	if err := s.repository.Update(ctx, id, input); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Profile not found", err)
		}
		return nil, err
	}
	s.fetchAll(ctx)
	input.ID = id
	return input, nil
}

// Delete removes a profile. Removing the last remaining ADMIN is rejected
// before any store call: at least one ADMIN must exist at all times.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	users := s.fetchAll(ctx)

	var target *User
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return errors.NotFound("Profile not found", nil)
	}

	if target.Role == RoleAdmin && CountAdmins(users) <= 1 {
		return errors.UnprocessableEntity("Cannot delete the last administrator", nil)
	}

	if s.state.Demo(datasource.Users) {
		kept := make([]User, 0, len(users)-1)
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
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
func (s *DefaultService) fetchAll(ctx context.Context) []User {
	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	remote, err := s.repository.List(rctx)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("Remote profile read failed, falling back to demo data")
	}

	if datasource.IsDemoResult(len(remote), err) {
		s.state.SetDemo(datasource.Users, true)
		return s.loadDemo()
	}

	s.state.SetDemo(datasource.Users, false)
	if err := s.demo.Clear(string(datasource.Users)); err != nil {
		log.Warn().Err(err).Msg("Failed to clear demo profiles")
	}
	for i := range remote {
		remote[i].normalize()
	}
	return remote
}

func (s *DefaultService) ensureMode(ctx context.Context) {
	if !s.state.Known(datasource.Users) {
		s.fetchAll(ctx)
	}
}

func (s *DefaultService) loadDemo() []User {
	var users []User
	ok, err := s.demo.Load(string(datasource.Users), &users)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load demo profiles, reseeding")
	}
	if !ok || err != nil {
		users = DemoSeed()
		s.persistDemo(users)
	}
	return users
}

func (s *DefaultService) persistDemo(users []User) {
	if err := s.demo.Save(string(datasource.Users), users); err != nil {
		log.Error().Err(err).Msg("Failed to persist demo profiles")
	}
}

func (s *DefaultService) updateDemo(id string, input *User) (*User, error) {
	users := s.loadDemo()
	for i := range users {
		if users[i].ID == id {
			users[i].Name = input.Name
			users[i].Email = input.Email
			users[i].Role = input.Role
			users[i].Area = input.Area
			s.persistDemo(users)
			return &users[i], nil
		}
	}
	return nil, errors.NotFound("Profile not found", nil)
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
		log.Warn().Str("area", name).Msg("Profile references an area missing from the catalog")
	}
}
