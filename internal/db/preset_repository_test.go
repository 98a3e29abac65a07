package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/rangepicker/internal/models"
	embeddedmigrations "github.com/terraincognita07/rangepicker/migrations"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T, name string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return database
}

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "presets.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	migrations, err := loadEmbeddedMigrations(embeddedmigrations.Files)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if int(applied) != len(migrations) {
		t.Fatalf("expected %d applied migrations, got %d", len(migrations), applied)
	}
	if !database.Migrator().HasTable(&models.PickerPreset{}) {
		t.Fatal("expected picker_presets table to exist")
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close sqlite: %v", err)
	}

	reopened, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer func() {
		if sqlDB, err := reopened.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	if err := reopened.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations after reopen: %v", err)
	}
	if int(applied) != len(migrations) {
		t.Fatalf("expected reopen to keep %d migrations, got %d", len(migrations), applied)
	}
}

func TestPresetRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewRepositories(openTestDatabase(t, "roundtrip.db")).Presets

	preset := models.PickerPreset{Name: "Quarter", HorizonStart: "2026-01-01", HorizonEnd: "2026-03-31", PaneCount: 3}
	if err := repo.Create(&preset); err != nil {
		t.Fatalf("create preset: %v", err)
	}
	if preset.ID == 0 {
		t.Fatal("expected generated id")
	}

	found, ok, err := repo.FindByID(preset.ID)
	if err != nil || !ok {
		t.Fatalf("expected preset by id, got ok=%v err=%v", ok, err)
	}
	if found.Name != "Quarter" || found.PaneCount != 3 {
		t.Fatalf("unexpected preset %#v", found)
	}

	if _, ok, err := repo.FindByName("Quarter"); err != nil || !ok {
		t.Fatalf("expected preset by name, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.FindByName("missing"); err != nil || ok {
		t.Fatalf("expected missing preset, got ok=%v err=%v", ok, err)
	}

	deleted, err := repo.DeleteByID(preset.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete, got deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.DeleteByID(preset.ID)
	if err != nil || deleted {
		t.Fatalf("expected second delete to find nothing, got deleted=%v err=%v", deleted, err)
	}
}

func TestPresetRepositoryEnforcesUniqueNames(t *testing.T) {
	t.Parallel()

	repo := NewPresetRepository(openTestDatabase(t, "unique.db"))

	first := models.PickerPreset{Name: "Year", HorizonStart: "2026-01-01", HorizonEnd: "2026-12-31", PaneCount: 2}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create preset: %v", err)
	}
	second := models.PickerPreset{Name: "Year", HorizonStart: "2027-01-01", HorizonEnd: "2027-12-31", PaneCount: 2}
	if err := repo.Create(&second); err == nil {
		t.Fatal("expected unique index violation")
	}
}

func TestPresetRepositoryListsByName(t *testing.T) {
	t.Parallel()

	repo := NewPresetRepository(openTestDatabase(t, "list.db"))
	for _, name := range []string{"Winter", "Autumn", "Summer"} {
		preset := models.PickerPreset{Name: name, HorizonStart: "2026-01-01", HorizonEnd: "2026-12-31", PaneCount: 2}
		if err := repo.Create(&preset); err != nil {
			t.Fatalf("create preset %s: %v", name, err)
		}
	}

	presets, err := repo.List()
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(presets) != 3 || presets[0].Name != "Autumn" || presets[2].Name != "Winter" {
		t.Fatalf("expected presets ordered by name, got %#v", presets)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	t.Parallel()

	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n  ;CREATE INDEX b ON a(id);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %#v", statements)
	}
	if statements[1] != "CREATE INDEX b ON a(id)" {
		t.Fatalf("unexpected second statement %q", statements[1])
	}
}
