package repo

import "github.com/princesinghgemini-dotcom/veto/internal/models"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
