package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"norms-hub/internal/user"
)

func testNorms() []Norm {
	return []Norm{
		{ID: "a", Title: "Conteo cíclico", Area: "Operaciones"},
		{ID: "b", Title: "Código de conducta", Area: "General"},
		{ID: "c", Title: "Política de backups", Area: "Sistemas"},
	}
}

func TestFilterVisible_UserSeesGeneralAndOwnArea(t *testing.T) {
	viewer := user.User{Role: user.RoleUser, Area: "Operaciones"}

	visible := FilterVisible(testNorms(), viewer, "")

	ids := make([]string, 0, len(visible))
	for _, n := range visible {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestFilterVisible_UserScopedToOwnArea(t *testing.T) {
	viewer := user.User{Role: user.RoleUser, Area: "Operaciones"}

	visible := FilterVisible(testNorms(), viewer, "Operaciones")

	assert.Len(t, visible, 1)
	assert.Equal(t, "a", visible[0].ID)
}

func TestFilterVisible_UserScopedToGeneral(t *testing.T) {
	viewer := user.User{Role: user.RoleUser, Area: "Operaciones"}

	visible := FilterVisible(testNorms(), viewer, "General")

	assert.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].ID)
}

func TestFilterVisible_UserScopedToForeignAreaGetsNothing(t *testing.T) {
	viewer := user.User{Role: user.RoleUser, Area: "Operaciones"}

	visible := FilterVisible(testNorms(), viewer, "Sistemas")

	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

func TestFilterVisible_EditorSeesEverything(t *testing.T) {
	viewer := user.User{Role: user.RoleEditor, Area: "Sistemas"}

	visible := FilterVisible(testNorms(), viewer, "")

	assert.Len(t, visible, 3)
}

func TestFilterVisible_AdminScopeOnlyFiltersByArea(t *testing.T) {
	viewer := user.User{Role: user.RoleAdmin, Area: "General"}

	visible := FilterVisible(testNorms(), viewer, "Sistemas")

	assert.Len(t, visible, 1)
	assert.Equal(t, "c", visible[0].ID)
}

func TestFilterVisible_PreservesOrder(t *testing.T) {
	norms := []Norm{
		{ID: "1", Area: "General"},
		{ID: "2", Area: "Comercial"},
		{ID: "3", Area: "General"},
	}
	viewer := user.User{Role: user.RoleUser, Area: "Comercial"}

	visible := FilterVisible(norms, viewer, "")

	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, "2", visible[1].ID)
	assert.Equal(t, "3", visible[2].ID)
}
