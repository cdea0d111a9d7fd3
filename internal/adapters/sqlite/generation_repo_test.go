package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/example/resmaker/internal/adapters/sqlite"
	"github.com/example/resmaker/internal/ports/secondary"
)

func TestGenerationRepository_CreateAndGet(t *testing.T) {
	repo := sqlite.NewGenerationRepository(setupTestDB(t))
	ctx := context.Background()

	record := &secondary.GenerationRecord{
		ID:            "GEN-001",
		GroupName:     "ComboOrders",
		FileName:      "combo_orders",
		VersionToken:  "20250108.1626",
		KeyCount:      2,
		QualifiedKeys: "ComboOrders.ChooseCombo,ComboOrders.Confirm",
		UpDigest:      "a1b2c3d4e5f60718",
		DownDigest:    "0817f6e5d4c3b2a1",
		Operator:      "maria",
		Archived:      true,
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "GEN-001")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.GroupName != record.GroupName || got.QualifiedKeys != record.QualifiedKeys {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.KeyCount != 2 || !got.Archived || got.Operator != "maria" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}

func TestGenerationRepository_CreateWithoutOperator(t *testing.T) {
	repo := sqlite.NewGenerationRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.GenerationRecord{
		ID: "GEN-001", GroupName: "G", FileName: "f", VersionToken: "t", KeyCount: 1,
		QualifiedKeys: "G.K", UpDigest: "u", DownDigest: "d",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "GEN-001")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Operator != "" {
		t.Errorf("Operator = %q, want empty", got.Operator)
	}
}

func TestGenerationRepository_GetByIDNotFound(t *testing.T) {
	repo := sqlite.NewGenerationRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "GEN-404")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerationRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGenerationRepository(db)

	seedGeneration(t, db, "GEN-001", "First", "2025-01-08 10:00:00")
	seedGeneration(t, db, "GEN-002", "Third", "2025-01-10 10:00:00")
	seedGeneration(t, db, "GEN-003", "Second", "2025-01-09 10:00:00")

	all, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"GEN-002", "GEN-003", "GEN-001"}
	if len(all) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(all))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("all[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}

	limited, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "GEN-002" {
		t.Errorf("List(1) = %+v", limited)
	}
}

func TestGenerationRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGenerationRepository(db)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID() error = %v", err)
	}
	if id != "GEN-001" {
		t.Errorf("GetNextID() = %q, want GEN-001", id)
	}

	seedGeneration(t, db, "GEN-009", "Group", "2025-01-08 10:00:00")
	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID() error = %v", err)
	}
	if id != "GEN-010" {
		t.Errorf("GetNextID() = %q, want GEN-010", id)
	}
}

func TestGenerationRepository_DriverErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	repo := sqlite.NewGenerationRepository(mockDB)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectExec("INSERT INTO generations").WillReturnError(boom)
	if err := repo.Create(ctx, &secondary.GenerationRecord{ID: "GEN-001"}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped %v", err, boom)
	}

	mock.ExpectQuery("SELECT (.+) FROM generations WHERE id").WillReturnError(boom)
	if _, err := repo.GetByID(ctx, "GEN-001"); !errors.Is(err, boom) || errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want wrapped %v", err, boom)
	}

	mock.ExpectQuery("SELECT (.+) FROM generations ORDER BY").WillReturnError(boom)
	if _, err := repo.List(ctx, 0); !errors.Is(err, boom) {
		t.Errorf("List() error = %v, want wrapped %v", err, boom)
	}

	mock.ExpectQuery("SELECT COALESCE").WillReturnError(boom)
	if _, err := repo.GetNextID(ctx); !errors.Is(err, boom) {
		t.Errorf("GetNextID() error = %v, want wrapped %v", err, boom)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
