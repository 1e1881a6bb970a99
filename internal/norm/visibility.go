package norm

import (
	"norms-hub/internal/area"
	"norms-hub/internal/user"
)

// FilterVisible narrows a fetched norm set to what the viewer may see. It is
// a presentation policy applied after fetch, not a storage-layer boundary.
//
// A USER sees norms from the General area and their own assigned area. When
// an explicit area scope is requested, a USER gets that area's norms only if
// the scope is General or their own area
// (a direct link to another area's norms yields nothing). EDITOR and ADMIN
// see everything; a scope only filters by area. Order is preserved.
func FilterVisible(norms []Norm, viewer user.User, areaScope string) []Norm {
	if viewer.Role == user.RoleUser {
		if areaScope != "" {
			if areaScope != area.General && areaScope != viewer.Area {
				return []Norm{}
			}
			return filterByArea(norms, areaScope)
		}
		visible := make([]Norm, 0, len(norms))
		for _, n := range norms {
			if n.Area == area.General || n.Area == viewer.Area {
				visible = append(visible, n)
			}
		}
		return visible
	}

	if areaScope != "" {
		return filterByArea(norms, areaScope)
	}
	return norms
}

func filterByArea(norms []Norm, name string) []Norm {
	filtered := make([]Norm, 0, len(norms))
	for _, n := range norms {
		if n.Area == name {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
