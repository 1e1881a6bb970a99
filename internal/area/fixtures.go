package area

import "fmt"

// Canonical area names of the demo organization.
var DemoAreaNames = []string{
	General,
	"Administración y Finanzas",
	"Comercial",
	"Operaciones",
	"Capital Humano",
	"Sistemas",
}

// DemoSeed returns the areas used to seed the demo store the first time the
// collection is needed.
func DemoSeed() []Area {
	areas := make([]Area, 0, len(DemoAreaNames))
	for i, name := range DemoAreaNames {
		areas = append(areas, Area{
			ID:          demoAreaID(i),
			Name:        name,
			Description: "Departamento de " + name,
		})
	}
	return areas
}

func demoAreaID(index int) string {
	return fmt.Sprintf("area-%d", index)
}
