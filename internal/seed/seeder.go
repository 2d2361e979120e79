package seed

import (
	"context"
	"fmt"
	"log"

	"users-api/internal/entities"
	"users-api/internal/repository"
)

// SampleUsers are the demo rows inserted on startup.
var SampleUsers = []entities.User{
	{Name: "John Doe", Email: "john.doe@example.com", Age: 25, City: "New York"},
	{Name: "Jane Smith", Email: "jane.smith@example.com", Age: 30, City: "Los Angeles"},
	{Name: "Bob Johnson", Email: "bob.johnson@test.com", Age: 35, City: "Chicago"},
	{Name: "Alice Brown", Email: "alice.brown@example.com", Age: 28, City: "New York"},
	{Name: "Charlie Wilson", Email: "charlie.wilson@test.com", Age: 42, City: "Miami"},
	{Name: "Diana Davis", Email: "diana.davis@example.com", Age: 22, City: "Seattle"},
	{Name: "Eve Miller", Email: "eve.miller@demo.com", Age: 38, City: "Boston"},
	{Name: "Frank Garcia", Email: "frank.garcia@example.com", Age: 45, City: "Chicago"},
}

// Run clears the users table and inserts SampleUsers, returning the resulting row count
func Run(ctx context.Context, repo repository.UserRepository) (int64, error) {
	if err := repo.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear users: %w", err)
	}

	for i := range SampleUsers {
		if _, err := repo.Create(ctx, &SampleUsers[i]); err != nil {
			return 0, fmt.Errorf("failed to seed %s: %w", SampleUsers[i].Email, err)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}

	log.Printf("Sample data initialized, total users: %d", total)
	return total, nil
}
