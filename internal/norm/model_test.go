package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	n := Norm{
		Title:       "Política de Control de Inventario",
		Code:        "NOR-OPS-012",
		Description: "Procedimiento para el conteo cíclico y auditoría de mercadería.",
		Tags:        []string{"Stock", "Logística"},
	}

	assert.True(t, n.MatchesQuery("inventario"))
	assert.True(t, n.MatchesQuery("nor-ops"))
	assert.True(t, n.MatchesQuery("stock"))
	assert.True(t, n.MatchesQuery("auditoría"))
	assert.True(t, n.MatchesQuery(""))
	assert.False(t, n.MatchesQuery("branding"))
}

func TestNormalize(t *testing.T) {
	n := Norm{Title: "Sin metadatos"}
	n.normalize()

	assert.NotNil(t, n.Tags)
	assert.Equal(t, StatusPublished, n.Status)
	assert.False(t, n.UpdatedAt.IsZero())
}

func TestNormalize_KeepsExistingValues(t *testing.T) {
	n := Norm{Status: StatusDraft, Tags: []string{"Visual"}}
	n.normalize()

	assert.Equal(t, StatusDraft, n.Status)
	assert.Equal(t, []string{"Visual"}, n.Tags)
}
