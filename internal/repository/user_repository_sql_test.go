package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/entities"
	"users-api/internal/models"
)

const selectUsers = `SELECT id, name, email, age, city, created_at FROM users`

var userRowColumns = []string{"id", "name", "email", "age", "city", "created_at"}

func setupMockRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewUserRepository(sqlx.NewDb(db, "postgres")).(*userRepository)
	return repo, mock
}

func TestFindByCityPageUsesPostgresPlaceholders(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE city = $1`)).
		WithArgs("Chicago").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(selectUsers + ` WHERE city = $1 ORDER BY name DESC LIMIT 2 OFFSET 2`)).
		WithArgs("Chicago").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "Bob Johnson", "bob.johnson@test.com", 35, "Chicago", now))

	page, err := repo.FindByCityPage(context.Background(), "Chicago", models.PageRequest{Page: 1, Size: 2, SortBy: "name", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Bob Johnson", page.Content[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageSkipsFetchWhenNothingMatches(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE age > $1`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repo.FindOlderThanPage(context.Background(), 99, models.PageRequest{Page: 0, Size: 10, SortBy: "age"})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageWithOverflowingOffsetIsEmpty(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE city = $1`)).
		WithArgs("Chicago").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	req := models.PageRequest{Page: 1 << 32, Size: 1 << 32, SortBy: "id"}
	page, err := repo.FindByCityPage(context.Background(), "Chicago", req)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1<<32, page.Number)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterQueries(t *testing.T) {
	tests := []struct {
		name  string
		query string
		args  []driver.Value
		call  func(r *userRepository) error
	}{
		{
			name:  "name containing is case-insensitive",
			query: selectUsers + ` WHERE LOWER(name) LIKE $1 ORDER BY id ASC`,
			args:  []driver.Value{"%john%"},
			call: func(r *userRepository) error {
				_, err := r.FindByNameContaining(context.Background(), "JoHn")
				return err
			},
		},
		{
			name:  "age range is inclusive",
			query: selectUsers + ` WHERE age BETWEEN $1 AND $2 ORDER BY id ASC`,
			args:  []driver.Value{25, 30},
			call: func(r *userRepository) error {
				_, err := r.FindByAgeBetween(context.Background(), 25, 30)
				return err
			},
		},
		{
			name:  "name and city",
			query: selectUsers + ` WHERE (name = $1 AND city = $2) ORDER BY id ASC`,
			args:  []driver.Value{"John Doe", "New York"},
			call: func(r *userRepository) error {
				_, err := r.FindByNameAndCity(context.Background(), "John Doe", "New York")
				return err
			},
		},
		{
			name:  "email domain is a suffix match",
			query: selectUsers + ` WHERE (length(email) >= $1 AND substr(email, length(email) - $2 + 1) = $3) ORDER BY id ASC`,
			args:  []driver.Value{12, 12, "@example.com"},
			call: func(r *userRepository) error {
				_, err := r.FindByEmailDomain(context.Background(), "@example.com")
				return err
			},
		},
		{
			name:  "older than ordered by creation",
			query: selectUsers + ` WHERE age > $1 ORDER BY created_at DESC`,
			args:  []driver.Value{30},
			call: func(r *userRepository) error {
				_, err := r.FindOlderThanOrderByCreatedAt(context.Background(), 30)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(userRowColumns))

			require.NoError(t, tt.call(repo))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindCreatedInLastDaysCutsOffAtMidnightUTC(t *testing.T) {
	repo, mock := setupMockRepo(t)
	repo.now = func() time.Time { return time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC) }

	mock.ExpectQuery(regexp.QuoteMeta(selectUsers + ` WHERE created_at >= $1 ORDER BY id ASC`)).
		WithArgs(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.FindCreatedInLastDays(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsStoreAssignedFields(t *testing.T) {
	repo, mock := setupMockRepo(t)
	createdAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return createdAt }

	mock.ExpectQuery(`INSERT INTO users \(name,email,age,city,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("Ann", "ann@x.com", 30, "Denver", createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	user, err := repo.Create(context.Background(), &entities.User{ID: 999, Name: "Ann", Email: "ann@x.com", Age: 30, City: "Denver"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, createdAt, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingUserReturnsNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDWrapsDriverErrors(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsers + ` WHERE id = $1 ORDER BY id ASC LIMIT 1`)).
		WithArgs(int64(1)).
		WillReturnError(assert.AnError)

	_, err := repo.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAdvancesPostgresSequence(t *testing.T) {
	repo, mock := setupMockRepo(t)
	createdAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return createdAt }

	mock.ExpectExec(`INSERT INTO users \(id,name,email,age,city,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(int64(5), "Zed", "zed@x.com", 50, "Austin", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectUsers + ` WHERE id = $1 ORDER BY id ASC LIMIT 1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(5, "Zed", "zed@x.com", 50, "Austin", createdAt))

	user, err := repo.Upsert(context.Background(), &entities.User{ID: 5, Name: "Zed", Email: "zed@x.com", Age: 50, City: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSequenceFailureIsReported(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SELECT setval`).WillReturnError(assert.AnError)

	_, err := repo.Upsert(context.Background(), &entities.User{ID: 5, Name: "Zed"})
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}
