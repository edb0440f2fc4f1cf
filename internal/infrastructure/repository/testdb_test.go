package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/infrastructure/persistence/models"
)

// setupTestDB opens a file-backed SQLite database with a single connection
// so concurrent goroutines queue instead of failing with SQLITE_BUSY.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "pulseboard.db") + "?_busy_timeout=5000"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func createOrg(t *testing.T, repo *OrganizationRepository, name, owner string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(name, "", "", "", nil, owner)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), org))
	return org
}

func createTicket(t *testing.T, repo *TicketRepository, orgID, reporter, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(orgID, reporter, title, title+" description", vo.TagBug, "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), tk))
	return tk
}
