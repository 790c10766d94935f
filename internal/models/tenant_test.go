package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// дерево: holding ← subsidiary ← branch, и отдельная ветка sibling
func buildHierarchy() (holding, subsidiary, branch, sibling *Tenant) {
	holding = &Tenant{Name: "Holding", IsCorporateParent: true}
	holding.ID = 1

	subsidiary = &Tenant{Name: "Subsidiary", Parent: holding}
	subsidiary.ID = 2

	branch = &Tenant{Name: "Branch", Parent: subsidiary}
	branch.ID = 3

	sibling = &Tenant{Name: "Sibling", Parent: holding}
	sibling.ID = 4

	subsidiary.Subsidiaries = []*Tenant{branch}
	holding.Subsidiaries = []*Tenant{subsidiary, sibling}
	return
}

func TestTenantRootParent(t *testing.T) {
	holding, subsidiary, branch, _ := buildHierarchy()

	assert.Equal(t, holding, branch.RootParent())
	assert.Equal(t, holding, subsidiary.RootParent())
	assert.Equal(t, holding, holding.RootParent())
}

func TestTenantAllSubsidiaries(t *testing.T) {
	holding, subsidiary, branch, sibling := buildHierarchy()

	all := holding.AllSubsidiaries()
	require.Len(t, all, 3)
	assert.Contains(t, all, subsidiary)
	assert.Contains(t, all, branch)
	assert.Contains(t, all, sibling)

	assert.Empty(t, branch.AllSubsidiaries())
}

func TestTenantAllAncestors(t *testing.T) {
	holding, subsidiary, branch, _ := buildHierarchy()

	ancestors := branch.AllAncestors()
	require.Len(t, ancestors, 2)
	// от непосредственного родителя к корню
	assert.Equal(t, subsidiary, ancestors[0])
	assert.Equal(t, holding, ancestors[1])

	assert.Empty(t, holding.AllAncestors())
}

func TestTenantHierarchyDepth(t *testing.T) {
	holding, subsidiary, branch, _ := buildHierarchy()

	assert.Equal(t, 0, holding.HierarchyDepth())
	assert.Equal(t, 1, subsidiary.HierarchyDepth())
	assert.Equal(t, 2, branch.HierarchyDepth())
}

func TestTenantIsDescendantOf(t *testing.T) {
	holding, subsidiary, branch, sibling := buildHierarchy()

	assert.True(t, branch.IsDescendantOf(holding))
	assert.True(t, branch.IsDescendantOf(subsidiary))
	assert.False(t, branch.IsDescendantOf(sibling))
	assert.False(t, holding.IsDescendantOf(branch))
	assert.False(t, branch.IsDescendantOf(nil))
}
