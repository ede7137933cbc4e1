package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"sport_events/internal/models"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func eventColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "deleted_at",
		"id_coordinator", "name", "description",
		"max_participants", "current_num_participants",
		"start_date", "start_time",
		"sport_category_id", "location_id", "route_id",
	}
}

func eventRow(id uint, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(eventColumns()).
		AddRow(id, now, now, nil,
			7, name, "a test event",
			20, 5,
			time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), "08:30:00",
			1, 5, nil)
}

func TestEventStoreFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with category preload", func(t *testing.T) {
		gdb, mock := newTestDB(t)

		mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"\."id" = \$1`).
			WithArgs(1, 1).
			WillReturnRows(eventRow(1, "Morning Run"))
		mock.ExpectQuery(`SELECT \* FROM "sport_categories" WHERE "sport_categories"\."id" = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_path", "requires_route"}).
				AddRow(1, "Running", "/icons/run.png", false))

		event, err := NewEventStore(gdb).FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Morning Run", event.Name)
		assert.Equal(t, "Running", event.SportCategory.Name)
		assert.Equal(t, 8, event.StartTime.Hour())
		assert.Equal(t, 30, event.StartTime.Minute())
		require.NotNil(t, event.LocationID)
		assert.Equal(t, uint(5), *event.LocationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		gdb, mock := newTestDB(t)

		mock.ExpectQuery(`SELECT \* FROM "events"`).
			WillReturnRows(sqlmock.NewRows(eventColumns()))

		_, err := NewEventStore(gdb).FindByID(ctx, 99)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestEventStoreSave(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	event := &models.Event{
		Name:            "New Event",
		StartDate:       time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       models.NewTimeOfDay(9, 0),
		SportCategoryID: 1,
	}
	require.NoError(t, NewEventStore(gdb).Save(context.Background(), event))
	assert.Equal(t, uint(3), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreDeleteByID(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE "events" SET "deleted_at"`).
		WithArgs(sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewEventStore(gdb).DeleteByID(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindByDateRange(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE start_date BETWEEN \$1 AND \$2`).
		WithArgs("2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	events, err := NewEventStore(gdb).FindByDateRange(context.Background(),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindByDate(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE start_date = \$1`).
		WithArgs("2024-05-15").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := NewEventStore(gdb).FindByDate(context.Background(),
		time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindFromDate(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE start_date >= \$1`).
		WithArgs("2024-05-20").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := NewEventStore(gdb).FindFromDate(context.Background(),
		time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindByTimeRange(t *testing.T) {
	gdb, mock := newTestDB(t)

	// The TimeOfDay bounds are bound as HH:MM:SS strings.
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE start_time BETWEEN \$1 AND \$2`).
		WithArgs("21:00:00", "23:59:00").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := NewEventStore(gdb).FindByTimeRange(context.Background(),
		models.NewTimeOfDay(21, 0), models.NewTimeOfDay(23, 59))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindByCoordinatorID(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id_coordinator = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := NewEventStore(gdb).FindByCoordinatorID(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreFindByCategoryName(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "events" JOIN sport_categories`).
		WithArgs("Football").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := NewEventStore(gdb).FindByCategoryName(context.Background(), "Football")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSportCategoryStoreFindByName(t *testing.T) {
	gdb, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "sport_categories" WHERE name = \$1`).
		WithArgs("Marathon", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_path", "requires_route"}).
			AddRow(2, "Marathon", "/icons/marathon.png", true))

	category, err := NewSportCategoryStore(gdb).FindByName(context.Background(), "Marathon")
	require.NoError(t, err)
	assert.True(t, category.RequiresRoute)
	assert.NoError(t, mock.ExpectationsWereMet())
}
