package repository

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository.go -package=repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"users-api/internal/entities"
	"users-api/internal/models"
)

const tracerName = "users-api/internal/repository"

// ErrUserNotFound is returned when no row matches the requested identifier or email
var ErrUserNotFound = errors.New("user not found")

var userColumns = []string{"id", "name", "email", "age", "city", "created_at"}

// UserRepository defines the interface for user database operations.
// Every list lookup has an unpaginated variant ordered by id and a paginated one.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Upsert(ctx context.Context, user *entities.User) (*entities.User, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByCity(ctx context.Context, city string) (int64, error)

	FindAll(ctx context.Context) ([]entities.User, error)
	FindAllPage(ctx context.Context, page models.PageRequest) (*models.Page[entities.User], error)
	FindByNameContaining(ctx context.Context, name string) ([]entities.User, error)
	FindByNameContainingPage(ctx context.Context, name string, page models.PageRequest) (*models.Page[entities.User], error)
	FindByCity(ctx context.Context, city string) ([]entities.User, error)
	FindByCityPage(ctx context.Context, city string, page models.PageRequest) (*models.Page[entities.User], error)
	FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]entities.User, error)
	FindByAgeBetweenPage(ctx context.Context, minAge, maxAge int, page models.PageRequest) (*models.Page[entities.User], error)
	FindOlderThan(ctx context.Context, age int) ([]entities.User, error)
	FindOlderThanPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error)
	FindByNameAndCity(ctx context.Context, name, city string) ([]entities.User, error)
	FindByNameAndCityPage(ctx context.Context, name, city string, page models.PageRequest) (*models.Page[entities.User], error)
	FindByEmailDomain(ctx context.Context, domain string) ([]entities.User, error)
	FindByEmailDomainPage(ctx context.Context, domain string, page models.PageRequest) (*models.Page[entities.User], error)
	FindOlderThanOrderByCreatedAt(ctx context.Context, age int) ([]entities.User, error)
	FindOlderThanOrderByCreatedAtPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error)
	FindCreatedInLastDays(ctx context.Context, days int) ([]entities.User, error)
	FindCreatedInLastDaysPage(ctx context.Context, days int, page models.PageRequest) (*models.Page[entities.User], error)
}

const syncIDSequenceQuery = `SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))`

type userRepository struct {
	db     *sqlx.DB
	sb     sq.StatementBuilderType
	tracer trace.Tracer
	now    func() time.Time
}

// NewUserRepository creates a new user repository; placeholders follow the connection's driver
func NewUserRepository(db *sqlx.DB) UserRepository {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.DriverName() == "postgres" {
		placeholder = sq.Dollar
	}

	return &userRepository{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(placeholder),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}

// Create inserts a new user; the identifier in the payload is ignored
func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	created := *user
	created.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := r.sb.Insert("users").
		Columns("name", "email", "age", "city", "created_at").
		Values(created.Name, created.Email, created.Age, created.City, created.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	ctx, span := r.startSpan(ctx, "Create", query)
	err = r.db.QueryRowxContext(ctx, query, args...).Scan(&created.ID)
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// Upsert replaces the row with user.ID, or inserts it when no such row exists.
// The creation timestamp of an existing row is kept.
func (r *userRepository) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := r.sb.Insert("users").
		Columns("id", "name", "email", "age", "city", "created_at").
		Values(user.ID, user.Name, user.Email, user.Age, user.City, r.now().UTC().Truncate(time.Microsecond)).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, age = EXCLUDED.age, city = EXCLUDED.city").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert: %w", err)
	}

	ctx, span := r.startSpan(ctx, "Upsert", query)
	_, err = r.db.ExecContext(ctx, query, args...)
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to save user %d: %w", user.ID, err)
	}

	if err := r.syncIDSequence(ctx); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, user.ID)
}

// syncIDSequence moves the postgres id sequence past any explicitly inserted id so
// later creates do not collide. sqlite AUTOINCREMENT already tracks the largest id.
func (r *userRepository) syncIDSequence(ctx context.Context) error {
	if r.db.DriverName() != "postgres" {
		return nil
	}

	ctx, span := r.startSpan(ctx, "SyncIDSequence", syncIDSequenceQuery)
	_, err := r.db.ExecContext(ctx, syncIDSequenceQuery)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("failed to advance user id sequence: %w", err)
	}
	return nil
}

// Delete removes a user by ID
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	ctx, span := r.startSpan(ctx, "Delete", query)
	result, err := r.db.ExecContext(ctx, query, args...)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteAll removes every user
func (r *userRepository) DeleteAll(ctx context.Context) error {
	query, args, err := r.sb.Delete("users").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	ctx, span := r.startSpan(ctx, "DeleteAll", query)
	_, err = r.db.ExecContext(ctx, query, args...)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "Count", nil)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.get(ctx, "FindByID", sq.Eq{"id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.get(ctx, "FindByEmail", sq.Eq{"email": email})
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	total, err := r.count(ctx, "ExistsByEmail", sq.Eq{"email": email})
	if err != nil {
		return false, err
	}
	return total > 0, nil
}

func (r *userRepository) CountByCity(ctx context.Context, city string) (int64, error) {
	return r.count(ctx, "CountByCity", sq.Eq{"city": city})
}

func (r *userRepository) FindAll(ctx context.Context) ([]entities.User, error) {
	return r.list(ctx, "FindAll", nil)
}

func (r *userRepository) FindAllPage(ctx context.Context, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindAllPage", nil, page)
}

// FindByNameContaining matches a case-insensitive substring of the name
func (r *userRepository) FindByNameContaining(ctx context.Context, name string) ([]entities.User, error) {
	return r.list(ctx, "FindByNameContaining", nameContaining(name))
}

func (r *userRepository) FindByNameContainingPage(ctx context.Context, name string, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindByNameContainingPage", nameContaining(name), page)
}

func (r *userRepository) FindByCity(ctx context.Context, city string) ([]entities.User, error) {
	return r.list(ctx, "FindByCity", sq.Eq{"city": city})
}

func (r *userRepository) FindByCityPage(ctx context.Context, city string, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindByCityPage", sq.Eq{"city": city}, page)
}

// FindByAgeBetween matches ages in [minAge, maxAge]
func (r *userRepository) FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]entities.User, error) {
	return r.list(ctx, "FindByAgeBetween", ageBetween(minAge, maxAge))
}

func (r *userRepository) FindByAgeBetweenPage(ctx context.Context, minAge, maxAge int, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindByAgeBetweenPage", ageBetween(minAge, maxAge), page)
}

func (r *userRepository) FindOlderThan(ctx context.Context, age int) ([]entities.User, error) {
	return r.list(ctx, "FindOlderThan", sq.Gt{"age": age})
}

func (r *userRepository) FindOlderThanPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindOlderThanPage", sq.Gt{"age": age}, page)
}

func (r *userRepository) FindByNameAndCity(ctx context.Context, name, city string) ([]entities.User, error) {
	return r.list(ctx, "FindByNameAndCity", nameAndCity(name, city))
}

func (r *userRepository) FindByNameAndCityPage(ctx context.Context, name, city string, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindByNameAndCityPage", nameAndCity(name, city), page)
}

// FindByEmailDomain matches emails ending with domain, e.g. "@example.com". The match is case-sensitive.
func (r *userRepository) FindByEmailDomain(ctx context.Context, domain string) ([]entities.User, error) {
	return r.list(ctx, "FindByEmailDomain", emailEndsWith(domain))
}

func (r *userRepository) FindByEmailDomainPage(ctx context.Context, domain string, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindByEmailDomainPage", emailEndsWith(domain), page)
}

// FindOlderThanOrderByCreatedAt returns the newest users first
func (r *userRepository) FindOlderThanOrderByCreatedAt(ctx context.Context, age int) ([]entities.User, error) {
	return r.list(ctx, "FindOlderThanOrderByCreatedAt", sq.Gt{"age": age}, "created_at DESC")
}

// FindOlderThanOrderByCreatedAtPage keeps the created_at ordering regardless of the requested sort
func (r *userRepository) FindOlderThanOrderByCreatedAtPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindOlderThanOrderByCreatedAtPage", sq.Gt{"age": age}, page, "created_at DESC")
}

// FindCreatedInLastDays returns users created on or after midnight UTC, days days ago
func (r *userRepository) FindCreatedInLastDays(ctx context.Context, days int) ([]entities.User, error) {
	return r.list(ctx, "FindCreatedInLastDays", sq.GtOrEq{"created_at": r.cutoff(days)})
}

func (r *userRepository) FindCreatedInLastDaysPage(ctx context.Context, days int, page models.PageRequest) (*models.Page[entities.User], error) {
	return r.page(ctx, "FindCreatedInLastDaysPage", sq.GtOrEq{"created_at": r.cutoff(days)}, page)
}

func (r *userRepository) cutoff(days int) time.Time {
	now := r.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -days)
}

func nameContaining(name string) sq.Sqlizer {
	return sq.Expr("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
}

// emailEndsWith compares the tail of email directly instead of using LIKE, whose
// case handling differs between sqlite and postgres and which treats % and _ as wildcards.
func emailEndsWith(domain string) sq.Sqlizer {
	n := utf8.RuneCountInString(domain)
	return sq.Expr("(length(email) >= ? AND substr(email, length(email) - ? + 1) = ?)", n, n, domain)
}

func ageBetween(minAge, maxAge int) sq.Sqlizer {
	return sq.Expr("age BETWEEN ? AND ?", minAge, maxAge)
}

func nameAndCity(name, city string) sq.Sqlizer {
	return sq.And{sq.Eq{"name": name}, sq.Eq{"city": city}}
}

func (r *userRepository) get(ctx context.Context, op string, where sq.Sqlizer) (*entities.User, error) {
	query, args, err := r.sb.Select(userColumns...).From("users").Where(where).OrderBy("id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ctx, span := r.startSpan(ctx, op, query)
	var user entities.User
	err = r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		endSpan(span, nil)
		return nil, ErrUserNotFound
	}
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) list(ctx context.Context, op string, where sq.Sqlizer, orderBy ...string) ([]entities.User, error) {
	if len(orderBy) == 0 {
		orderBy = []string{"id ASC"}
	}

	query, args, err := r.sb.Select(userColumns...).From("users").Where(where).OrderBy(orderBy...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ctx, span := r.startSpan(ctx, op, query)
	users := make([]entities.User, 0)
	err = r.db.SelectContext(ctx, &users, query, args...)
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// page counts the matches, then fetches one page; orderBy overrides the requested sort
func (r *userRepository) page(ctx context.Context, op string, where sq.Sqlizer, req models.PageRequest, orderBy ...string) (*models.Page[entities.User], error) {
	total, err := r.count(ctx, op, where)
	if err != nil {
		return nil, err
	}
	offset, ok := req.Offset()
	if total == 0 || !ok || offset >= uint64(total) {
		return models.NewPage[entities.User](nil, req, total), nil
	}

	if len(orderBy) == 0 {
		orderBy = []string{req.OrderBy()}
	}

	query, args, err := r.sb.Select(userColumns...).From("users").
		Where(where).
		OrderBy(orderBy...).
		Limit(uint64(req.Size)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ctx, span := r.startSpan(ctx, op, query)
	users := make([]entities.User, 0, min(req.Size, int(total)))
	err = r.db.SelectContext(ctx, &users, query, args...)
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get users page: %w", err)
	}

	return models.NewPage(users, req, total), nil
}

func (r *userRepository) count(ctx context.Context, op string, where sq.Sqlizer) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("users").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count: %w", err)
	}

	ctx, span := r.startSpan(ctx, op, query)
	var total int64
	err = r.db.GetContext(ctx, &total, query, args...)
	endSpan(span, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return total, nil
}

func (r *userRepository) startSpan(ctx context.Context, op, query string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "UserRepository."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", r.db.DriverName()),
			attribute.String("db.statement", query),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
