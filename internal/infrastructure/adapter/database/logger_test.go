package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQLParts(t *testing.T) {
	tests := []struct {
		sql       string
		wantKind  string
		wantTable string
	}{
		{sql: `SELECT * FROM "transactions" WHERE reference = 'A'`, wantKind: "SELECT", wantTable: "transactions"},
		{sql: "  insert into `transactions` (reference) values (?)", wantKind: "INSERT", wantTable: "transactions"},
		{sql: `UPDATE "transactions" SET "delivery_status"='processing'`, wantKind: "UPDATE", wantTable: "transactions"},
		{sql: "DELETE FROM migration_versions", wantKind: "DELETE", wantTable: "migration_versions"},
		{sql: "PRAGMA journal_mode=WAL", wantKind: "", wantTable: ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, extractQueryType(tt.sql))
			assert.Equal(t, tt.wantTable, extractTableName(tt.sql))
		})
	}
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, parseGormLevel("silent"), parseGormLevel("SILENT"))
	assert.NotEqual(t, parseGormLevel("silent"), parseGormLevel("info"))
}
