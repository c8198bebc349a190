package contracts

import (
	"context"
	"presence-service/internal/app/models"
)

type UserDirectoryRepository interface {
	LoadUsers(ctx context.Context) (models.UserDirectory, error)
}

// UserDirectorySource is what the usecase reads the directory through; in
// production it is a memocache.Loader wrapping a UserDirectoryRepository.
type UserDirectorySource interface {
	Get(ctx context.Context) (models.UserDirectory, error)
}
