package entities

import "time"

// User represents a user record in the users table
type User struct {
	ID        int64     `json:"id" db:"id"` // Assigned by the store on insert
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Age       int       `json:"age" db:"age"`
	City      string    `json:"city" db:"city"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Assigned by the store on insert
}
