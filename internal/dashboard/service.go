// Package dashboard aggregates repository metrics for the admin console.
package dashboard

import (
	"context"

	"norms-hub/internal/area"
	"norms-hub/internal/datasource"
	"norms-hub/internal/norm"
	"norms-hub/internal/user"
)

// AreaCount is the number of norms filed under one catalog area.
type AreaCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Metrics is the aggregate snapshot rendered by the metrics panel.
type Metrics struct {
	TotalNorms    int            `json:"totalNorms"`
	TotalUsers    int            `json:"totalUsers"`
	TotalAreas    int            `json:"totalAreas"`
	UsersByRole   map[string]int `json:"usersByRole"`
	NormsByArea   []AreaCount    `json:"normsByArea"`
	NormsByStatus map[string]int `json:"normsByStatus"`
	DemoMode      bool           `json:"demoMode"`
}

type Service struct {
	norms norm.Service
	users user.Service
	areas area.Service
	state *datasource.State
}

func NewService(norms norm.Service, users user.Service, areas area.Service, state *datasource.State) *Service {
	return &Service{norms: norms, users: users, areas: areas, state: state}
}

// Snapshot fetches all three collections as the (privileged) viewer and
// computes the aggregates. Fetching also recomputes each collection's mode,
// so the reported demo flag reflects the store as of this call.
func (s *Service) Snapshot(ctx context.Context, viewer user.User) (*Metrics, error) {
	norms, err := s.norms.List(ctx, viewer, norm.ListOptions{})
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, err
	}

	byRole := map[string]int{
		string(user.RoleAdmin):  0,
		string(user.RoleEditor): 0,
		string(user.RoleUser):   0,
	}
	for _, u := range users {
		byRole[string(u.Role)]++
	}

	byArea := make([]AreaCount, 0, len(areas))
	for _, a := range areas {
		count := 0
		for _, n := range norms {
			if n.Area == a.Name {
				count++
			}
		}
		byArea = append(byArea, AreaCount{Name: a.Name, Count: count})
	}

	byStatus := map[string]int{
		norm.StatusPublished: 0,
		norm.StatusDraft:     0,
		norm.StatusArchived:  0,
	}
	for _, n := range norms {
		byStatus[n.Status]++
	}

	return &Metrics{
		TotalNorms:    len(norms),
		TotalUsers:    len(users),
		TotalAreas:    len(areas),
		UsersByRole:   byRole,
		NormsByArea:   byArea,
		NormsByStatus: byStatus,
		DemoMode: datasource.Overall(
			s.state.Demo(datasource.Norms),
			s.state.Demo(datasource.Users),
			true,
		),
	}, nil
}
