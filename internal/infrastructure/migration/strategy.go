// Package migration applies the schema with goose SQL scripts or, for
// development, gorm AutoMigrate.
package migration

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// ScriptsSourceDir is where `migrate create` writes new files, relative to the repo root.
const ScriptsSourceDir = "internal/infrastructure/migration/scripts"

type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy runs the embedded SQL scripts for one database driver.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	if _, err := gooseDialect(driver); err != nil {
		return nil, err
	}
	return &GooseStrategy{
		driver: driverDir(driver),
		logger: logger.NewLogger().With("component", "migration.goose"),
	}, nil
}

func driverDir(driver string) string {
	d := strings.ToLower(driver)
	if d == "" {
		return "mysql"
	}
	return d
}

func gooseDialect(driver string) (string, error) {
	switch driverDir(driver) {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	}
	return "", fmt.Errorf("unsupported migration driver: %s", driver)
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) dir() string {
	return "scripts/" + s.driver
}

// prepare binds goose's package-level state to the embedded scripts.
func (s *GooseStrategy) prepare() error {
	dialect, err := gooseDialect(s.driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(scripts)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	from, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if err := goose.Up(sqlDB, s.dir()); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	to, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed", "from_version", from, "to_version", to)
	return nil
}

func (s *GooseStrategy) Down(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.dir()); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	s.logger.Infow("down migration completed", "steps", steps)
	return nil
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(sqlDB)
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}
	return goose.Status(sqlDB, s.dir())
}

// Create writes a new SQL migration into the source tree under root.
func (s *GooseStrategy) Create(root, name string) error {
	if err := s.prepare(); err != nil {
		return err
	}
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(scripts)

	dir := filepath.Join(root, ScriptsSourceDir, s.driver)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created", "name", name, "dir", dir)
	return nil
}

// GormAutoMigrateStrategy syncs the schema from the gorm models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: logger.NewLogger().With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(models.All()))
	return nil
}

type gooseLogger struct {
	l logger.Interface
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
