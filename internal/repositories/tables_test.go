package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gearguard/migrations"
)

// Константы таблиц обязаны совпадать со схемой из миграций, иначе
// каждый запрос репозитория падает с undefined_table уже на проде.
func TestTableConstantsMatchMigrationSchema(t *testing.T) {
	schema, err := migrations.FS.ReadFile("00001_init.sql")
	require.NoError(t, err)

	tables := map[string]string{
		"userTable":           userTable,
		"teamTable":           teamTable,
		"teamMemberTable":     teamMemberTable,
		"categoryTable":       categoryTable,
		"equipmentTable":      equipmentTable,
		"requestTable":        requestTable,
		"historyTable":        historyTable,
		"maintenanceLogTable": maintenanceLogTable,
	}

	for name, table := range tables {
		stmt := fmt.Sprintf("CREATE TABLE %s (", table)
		require.Containsf(t, string(schema), stmt,
			"%s: миграция не создаёт таблицу %q", name, table)
	}
}
