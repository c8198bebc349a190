package contracts

import (
	"context"
	"presence-service/internal/app/models"
	"presence-service/internal/pkg/dto/responses"
)

type PresenceUsecase interface {
	GetUsers(ctx context.Context) ([]responses.User, error)
	MeanTimeWeekday(ctx context.Context, userID int) ([]responses.WeekdayRow, error)
	PresenceWeekday(ctx context.Context, userID int) ([]responses.WeekdayRow, error)
	PresenceStartEnd(ctx context.Context, userID int) ([]responses.WeekdayRow, error)
}

type PresenceRepository interface {
	LoadPresence(ctx context.Context) (models.PresenceByUser, error)
}

// PresenceSource is what the usecase reads presence data through; in
// production it is a memocache.Loader wrapping a PresenceRepository.
type PresenceSource interface {
	Get(ctx context.Context) (models.PresenceByUser, error)
}
