package area

import (
	"sort"
	"time"
)

// General is the distinguished area every profile may read. It always sorts
// first in area listings.
const General = "General"

// Area is a named organizational unit. Norms and profiles reference areas by
// name, not by id; removing an area leaves those references untouched.
type Area struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Area) TableName() string {
	return "areas"
}

// Sort orders areas by name ascending with General pinned first.
func Sort(areas []Area) {
	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].Name == General {
			return areas[j].Name != General
		}
		if areas[j].Name == General {
			return false
		}
		return areas[i].Name < areas[j].Name
	})
}
