package report

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/impact-atlas/pkg/models/store"
	"github.com/de-tools/impact-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func newRecord(id string, month, year int, createdAt time.Time) store.ReportRecord {
	return store.ReportRecord{
		ID:                    id,
		Month:                 month,
		Year:                  year,
		Client:                "Example Client",
		AdsLeadsGenerated:     150,
		AdsConversions:        85,
		AdsSpend:              6825,
		AdsCPA:                80.29,
		AdsROI:                4.5,
		AIInteractionVolume:   2500,
		AIQualifiedLeads:      65,
		AIUserSatisfaction:    92,
		PortalVisits:          8500,
		PortalSignups:         320,
		PortalConversions:     45,
		SocialOrganicLeads:    28,
		TotalLeads:            243,
		OverallConversionRate: 14.2,
		AverageTicket:         285000,
		NPSScore:              8.5,
		Notes:                 "Strong month",
		CreatedAt:             createdAt,
		UpdatedAt:             createdAt,
	}
}

func TestReportStore_UpsertAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	created := time.Date(2024, 12, 5, 9, 30, 0, 0, time.UTC)

	t.Run("success - insert and read back", func(t *testing.T) {
		record := newRecord("r1", 12, 2024, created)
		require.NoError(t, f.store.Upsert(ctx, record))

		got, err := f.store.Get(ctx, "r1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, record.UpdatedAt.Equal(got.UpdatedAt))

		got.CreatedAt, got.UpdatedAt = record.CreatedAt, record.UpdatedAt
		assert.Equal(t, record, *got)
	})

	t.Run("success - last write wins", func(t *testing.T) {
		record := newRecord("r1", 12, 2024, created)
		record.TotalLeads = 300
		record.UpdatedAt = created.Add(time.Hour)
		require.NoError(t, f.store.Upsert(ctx, record))

		got, err := f.store.Get(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.TotalLeads)
		assert.True(t, created.Add(time.Hour).Equal(got.UpdatedAt))

		var count int
		require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM monthly_reports").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("missing report", func(t *testing.T) {
		got, err := f.store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestReportStore_ListIsChronological(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, f.store.Upsert(ctx, newRecord("feb", 2, 2025, base)))
	require.NoError(t, f.store.Upsert(ctx, newRecord("dec", 12, 2024, base)))
	require.NoError(t, f.store.Upsert(ctx, newRecord("jan-late", 1, 2025, base.Add(time.Hour))))
	require.NoError(t, f.store.Upsert(ctx, newRecord("jan", 1, 2025, base)))

	records, err := f.store.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"dec", "jan", "jan-late", "feb"}, ids)
}

func TestReportStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Upsert(ctx, newRecord("r1", 3, 2025, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))))

	deleted, err := f.store.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.store.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestReportStore_UpsertInsideTransaction(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	err := duckdb.RunInTransaction(ctx, f.db, func(ctx context.Context) error {
		if err := f.store.Upsert(ctx, newRecord("a", 4, 2025, created)); err != nil {
			return err
		}
		return f.store.Upsert(ctx, newRecord("b", 5, 2025, created))
	})
	require.NoError(t, err)

	records, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReportStore_ReadsSeeUncommittedWritesOfSameTransaction(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	rollback := errors.New("rollback")

	err := duckdb.RunInTransaction(ctx, f.db, func(ctx context.Context) error {
		require.NoError(t, f.store.Upsert(ctx, newRecord("a", 4, 2025, created)))

		got, err := f.store.Get(ctx, "a")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, created.Equal(got.CreatedAt))

		records, err := f.store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)

		return rollback
	})
	require.ErrorIs(t, err, rollback)

	got, err := f.store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReportStore_DatabaseErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()
	boom := errors.New("disk full")

	mock.ExpectExec("INSERT OR REPLACE INTO monthly_reports").WillReturnError(boom)
	err = s.Upsert(ctx, newRecord("r1", 1, 2025, time.Now()))
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT (.+) FROM monthly_reports ORDER BY year, month, created_at").WillReturnError(boom)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT (.+) FROM monthly_reports WHERE id = ?").
		WithArgs("r1").
		WillReturnError(boom)
	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec("DELETE FROM monthly_reports WHERE id = ?").
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deleted, err := s.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, deleted)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
