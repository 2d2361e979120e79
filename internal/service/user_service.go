package service

//go:generate mockgen -source=user_service.go -destination=mock_user_service.go -package=service

import (
	"context"

	"users-api/internal/entities"
	"users-api/internal/models"
	"users-api/internal/repository"
)

// UserService defines the user operations exposed to the HTTP layer.
// It forwards to the repository without transformation.
type UserService interface {
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUserByID(ctx context.Context, id int64) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	CountUsersByCity(ctx context.Context, city string) (int64, error)

	GetAllUsers(ctx context.Context) ([]entities.User, error)
	GetAllUsersPage(ctx context.Context, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersByName(ctx context.Context, name string) ([]entities.User, error)
	FindUsersByNamePage(ctx context.Context, name string, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersByCity(ctx context.Context, city string) ([]entities.User, error)
	FindUsersByCityPage(ctx context.Context, city string, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersByAgeRange(ctx context.Context, minAge, maxAge int) ([]entities.User, error)
	FindUsersByAgeRangePage(ctx context.Context, minAge, maxAge int, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersOlderThan(ctx context.Context, age int) ([]entities.User, error)
	FindUsersOlderThanPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersByNameAndCity(ctx context.Context, name, city string) ([]entities.User, error)
	FindUsersByNameAndCityPage(ctx context.Context, name, city string, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersByEmailDomain(ctx context.Context, domain string) ([]entities.User, error)
	FindUsersByEmailDomainPage(ctx context.Context, domain string, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersOlderThanOrderByCreatedAt(ctx context.Context, age int) ([]entities.User, error)
	FindUsersOlderThanOrderByCreatedAtPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error)
	FindUsersCreatedInLastDays(ctx context.Context, days int) ([]entities.User, error)
	FindUsersCreatedInLastDaysPage(ctx context.Context, days int, page models.PageRequest) (*models.Page[entities.User], error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return s.repo.Create(ctx, user)
}

// UpdateUser saves the full record; an unknown ID inserts a new row
func (s *userService) UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return s.repo.Upsert(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *userService) CountUsersByCity(ctx context.Context, city string) (int64, error) {
	return s.repo.CountByCity(ctx, city)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetAllUsersPage(ctx context.Context, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindAllPage(ctx, page)
}

func (s *userService) FindUsersByName(ctx context.Context, name string) ([]entities.User, error) {
	return s.repo.FindByNameContaining(ctx, name)
}

func (s *userService) FindUsersByNamePage(ctx context.Context, name string, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindByNameContainingPage(ctx, name, page)
}

func (s *userService) FindUsersByCity(ctx context.Context, city string) ([]entities.User, error) {
	return s.repo.FindByCity(ctx, city)
}

func (s *userService) FindUsersByCityPage(ctx context.Context, city string, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindByCityPage(ctx, city, page)
}

func (s *userService) FindUsersByAgeRange(ctx context.Context, minAge, maxAge int) ([]entities.User, error) {
	return s.repo.FindByAgeBetween(ctx, minAge, maxAge)
}

func (s *userService) FindUsersByAgeRangePage(ctx context.Context, minAge, maxAge int, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindByAgeBetweenPage(ctx, minAge, maxAge, page)
}

func (s *userService) FindUsersOlderThan(ctx context.Context, age int) ([]entities.User, error) {
	return s.repo.FindOlderThan(ctx, age)
}

func (s *userService) FindUsersOlderThanPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindOlderThanPage(ctx, age, page)
}

func (s *userService) FindUsersByNameAndCity(ctx context.Context, name, city string) ([]entities.User, error) {
	return s.repo.FindByNameAndCity(ctx, name, city)
}

func (s *userService) FindUsersByNameAndCityPage(ctx context.Context, name, city string, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindByNameAndCityPage(ctx, name, city, page)
}

func (s *userService) FindUsersByEmailDomain(ctx context.Context, domain string) ([]entities.User, error) {
	return s.repo.FindByEmailDomain(ctx, domain)
}

func (s *userService) FindUsersByEmailDomainPage(ctx context.Context, domain string, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindByEmailDomainPage(ctx, domain, page)
}

func (s *userService) FindUsersOlderThanOrderByCreatedAt(ctx context.Context, age int) ([]entities.User, error) {
	return s.repo.FindOlderThanOrderByCreatedAt(ctx, age)
}

func (s *userService) FindUsersOlderThanOrderByCreatedAtPage(ctx context.Context, age int, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindOlderThanOrderByCreatedAtPage(ctx, age, page)
}

func (s *userService) FindUsersCreatedInLastDays(ctx context.Context, days int) ([]entities.User, error) {
	return s.repo.FindCreatedInLastDays(ctx, days)
}

func (s *userService) FindUsersCreatedInLastDaysPage(ctx context.Context, days int, page models.PageRequest) (*models.Page[entities.User], error) {
	return s.repo.FindCreatedInLastDaysPage(ctx, days, page)
}
