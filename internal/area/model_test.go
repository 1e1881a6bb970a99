package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_PinsGeneralFirst(t *testing.T) {
	areas := []Area{
		{Name: "Sistemas"},
		{Name: "Comercial"},
		{Name: "General"},
		{Name: "Administración y Finanzas"},
	}

	Sort(areas)

	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"General", "Administración y Finanzas", "Comercial", "Sistemas"}, names)
}

func TestSort_WithoutGeneral(t *testing.T) {
	areas := []Area{{Name: "Operaciones"}, {Name: "Comercial"}}

	Sort(areas)

	assert.Equal(t, "Comercial", areas[0].Name)
	assert.Equal(t, "Operaciones", areas[1].Name)
}

func TestDemoSeed_CoversCanonicalAreas(t *testing.T) {
	seed := DemoSeed()

	assert.Len(t, seed, len(DemoAreaNames))
	assert.Equal(t, General, seed[0].Name)
	for _, a := range seed {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Description)
	}
}
