package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/database"
	"users-api/internal/entities"
	"users-api/internal/models"
)

var fixtureUsers = []entities.User{
	{Name: "John Doe", Email: "john.doe@example.com", Age: 25, City: "New York"},
	{Name: "Jane Smith", Email: "jane.smith@example.com", Age: 30, City: "Los Angeles"},
	{Name: "Bob Johnson", Email: "bob.johnson@test.com", Age: 35, City: "Chicago"},
	{Name: "Alice Brown", Email: "alice.brown@example.com", Age: 28, City: "New York"},
	{Name: "Charlie Wilson", Email: "charlie.wilson@test.com", Age: 42, City: "Miami"},
	{Name: "Diana Davis", Email: "diana.davis@example.com", Age: 22, City: "Seattle"},
	{Name: "Eve Miller", Email: "eve.miller@demo.com", Age: 38, City: "Boston"},
	{Name: "Frank Garcia", Email: "frank.garcia@example.com", Age: 45, City: "Chicago"},
}

// newSQLiteRepo returns a repository over a migrated in-memory database whose clock
// advances one minute per insert starting at start.
func newSQLiteRepo(t *testing.T, start time.Time) *userRepository {
	t.Helper()
	db, err := database.NewConnection("sqlite3", ":memory:", database.PoolConfig{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repo := NewUserRepository(db).(*userRepository)
	clock := start
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return repo
}

func seedFixtures(t *testing.T, repo UserRepository) []entities.User {
	t.Helper()
	created := make([]entities.User, 0, len(fixtureUsers))
	for i := range fixtureUsers {
		user, err := repo.Create(context.Background(), &fixtureUsers[i])
		require.NoError(t, err)
		created = append(created, *user)
	}
	return created
}

func names(users []entities.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func assertSameUser(t *testing.T, want, got *entities.User) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.Age, got.Age)
	assert.Equal(t, want.City, got.City)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt %s != %s", want.CreatedAt, got.CreatedAt)
}

func TestCreateThenFind(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())

	created, err := repo.Create(ctx, &entities.User{ID: 77, Name: "Ann", Email: "ann@x.com", Age: 30, City: "Denver"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, int64(77), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assertSameUser(t, created, byID)

	byEmail, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assertSameUser(t, created, byEmail)

	exists, err := repo.ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindMissingUser(t *testing.T) {
	repo := newSQLiteRepo(t, time.Now().UTC())

	_, err := repo.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteThenFind(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	users := seedFixtures(t, repo)

	require.NoError(t, repo.Delete(ctx, users[0].ID))

	_, err := repo.FindByID(ctx, users[0].ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, users[0].ID), ErrUserNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(fixtureUsers)-1), total)

	require.NoError(t, repo.DeleteAll(ctx))
	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	users := seedFixtures(t, repo)
	original := users[1]

	updated, err := repo.Upsert(ctx, &entities.User{ID: original.ID, Name: "Jane Doe", Email: "jane.doe@example.com", Age: 31, City: "Denver"})
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Denver", updated.City)
	assert.Equal(t, 31, updated.Age)
	assert.True(t, original.CreatedAt.Equal(updated.CreatedAt))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(fixtureUsers)), total)
}

func TestUpsertUnknownIDCreatesRow(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())

	saved, err := repo.Upsert(ctx, &entities.User{ID: 500, Name: "Zed", Email: "zed@example.com", Age: 50, City: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, int64(500), saved.ID)

	found, err := repo.FindByID(ctx, 500)
	require.NoError(t, err)
	assertSameUser(t, saved, found)
	next, err := repo.Create(ctx, &entities.User{Name: "Amy", Email: "amy@example.com", Age: 20, City: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, int64(501), next.ID)
}

func TestLookups(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	seedFixtures(t, repo)

	byName, err := repo.FindByNameContaining(ctx, "JOHN")
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Bob Johnson"}, names(byName))

	byAge, err := repo.FindByAgeBetween(ctx, 25, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Jane Smith", "Alice Brown"}, names(byAge))

	older, err := repo.FindOlderThan(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie Wilson", "Frank Garcia"}, names(older))

	byNameAndCity, err := repo.FindByNameAndCity(ctx, "Alice Brown", "New York")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Brown"}, names(byNameAndCity))

	byDomain, err := repo.FindByEmailDomain(ctx, "@test.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob Johnson", "Charlie Wilson"}, names(byDomain))

	upperDomain, err := repo.FindByEmailDomain(ctx, "@TEST.com")
	require.NoError(t, err)
	assert.Empty(t, upperDomain)

	wildcard, err := repo.FindByEmailDomain(ctx, "_test.com")
	require.NoError(t, err)
	assert.Empty(t, wildcard)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(fixtureUsers))
}

func TestPagedAndUnpagedVariantsAgree(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	seedFixtures(t, repo)

	for _, city := range []string{"Chicago", "New York", "Miami", "Nowhere"} {
		unpaged, err := repo.FindByCity(ctx, city)
		require.NoError(t, err)

		page, err := repo.FindByCityPage(ctx, city, models.PageRequest{Page: 0, Size: 100, SortBy: "id"})
		require.NoError(t, err)
		assert.Equal(t, unpaged, page.Content, city)
		assert.Equal(t, int64(len(unpaged)), page.TotalElements, city)

		count, err := repo.CountByCity(ctx, city)
		require.NoError(t, err)
		assert.Equal(t, int64(len(unpaged)), count, city)
	}
}

func TestPaginationAndSorting(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	seedFixtures(t, repo)

	last, err := repo.FindAllPage(ctx, models.PageRequest{Page: 2, Size: 3, SortBy: "age", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Diana Davis"}, names(last.Content))
	assert.Equal(t, 3, last.TotalPages)
	assert.True(t, last.Last)

	first, err := repo.FindByEmailDomainPage(ctx, "@example.com", models.PageRequest{Page: 0, Size: 2, SortBy: "email"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Brown", "Diana Davis"}, names(first.Content))
	assert.Equal(t, int64(5), first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)

	beyond, err := repo.FindAllPage(ctx, models.PageRequest{Page: 10, Size: 5, SortBy: "id"})
	require.NoError(t, err)
	assert.Empty(t, beyond.Content)
	assert.Equal(t, int64(len(fixtureUsers)), beyond.TotalElements)
}

func TestOlderThanOrderByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, time.Now().UTC())
	seedFixtures(t, repo)

	newest, err := repo.FindOlderThanOrderByCreatedAt(ctx, 34)
	require.NoError(t, err)
	assert.Equal(t, []string{"Frank Garcia", "Eve Miller", "Charlie Wilson", "Bob Johnson"}, names(newest))

	// The requested sort is ignored
	page, err := repo.FindOlderThanOrderByCreatedAtPage(ctx, 34, models.PageRequest{Page: 0, Size: 2, SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Frank Garcia", "Eve Miller"}, names(page.Content))
	assert.Equal(t, int64(4), page.TotalElements)
}

func TestFindCreatedInLastDays(t *testing.T) {
	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	repo := newSQLiteRepo(t, today.AddDate(0, 0, -10))

	_, err := repo.Create(ctx, &entities.User{Name: "Old Timer", Email: "old@example.com", Age: 70, City: "Reno"})
	require.NoError(t, err)

	repo.now = func() time.Time { return today.Add(time.Hour) }
	_, err = repo.Create(ctx, &entities.User{Name: "New Comer", Email: "new@example.com", Age: 20, City: "Reno"})
	require.NoError(t, err)

	recent, err := repo.FindCreatedInLastDays(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"New Comer"}, names(recent))

	page, err := repo.FindCreatedInLastDaysPage(ctx, 30, models.PageRequest{Page: 0, Size: 10, SortBy: "createdAt", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"New Comer", "Old Timer"}, names(page.Content))
}
