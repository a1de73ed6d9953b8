package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Apurva130401/syncflo-backend/internal/domain/integration"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

// The provider registry and the profile schema must stay in lockstep:
// every registered provider has exactly one profile column and no profile
// column exists without a registered provider.
func TestProfile_ColumnsMatchRegistry(t *testing.T) {
	var p model.Profile
	schemaColumns := p.ConnectionColumns()

	registryColumns := make([]string, 0)
	for _, provider := range integration.Providers() {
		col, ok := integration.ColumnFor(string(provider))
		assert.True(t, ok)
		registryColumns = append(registryColumns, col)
	}

	assert.ElementsMatch(t, registryColumns, schemaColumns)
}

func TestProfile_ConnectionID(t *testing.T) {
	notion := "conn_abc"
	empty := ""
	p := model.Profile{
		UserID:              "u1",
		NotionConnectionID:  &notion,
		SlackConnectionID:   &empty,
	}

	id, ok := p.ConnectionID("notion_connection_id")
	assert.True(t, ok)
	assert.Equal(t, "conn_abc", id)

	// empty string counts as not connected
	_, ok = p.ConnectionID("slack_connection_id")
	assert.False(t, ok)

	// nil field
	_, ok = p.ConnectionID("hubspot_connection_id")
	assert.False(t, ok)

	// unknown column
	_, ok = p.ConnectionID("jira_connection_id")
	assert.False(t, ok)
}
