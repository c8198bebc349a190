package presence

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"presence-service/internal/app/contracts"
	"presence-service/internal/app/models"
	"presence-service/internal/pkg/constvars"
	"presence-service/internal/pkg/dto/responses"
	"presence-service/internal/pkg/exceptions"
	"presence-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type presenceUsecase struct {
	PresenceSource      contracts.PresenceSource
	UserDirectorySource contracts.UserDirectorySource
	Log                 *zap.Logger
}

var (
	presenceUsecaseInstance contracts.PresenceUsecase
	oncePresenceUsecase     sync.Once
)

func NewPresenceUsecase(
	presenceSource contracts.PresenceSource,
	userDirectorySource contracts.UserDirectorySource,
	logger *zap.Logger,
) contracts.PresenceUsecase {
	oncePresenceUsecase.Do(func() {
		instance := &presenceUsecase{
			PresenceSource:      presenceSource,
			UserDirectorySource: userDirectorySource,
			Log:                 logger,
		}
		presenceUsecaseInstance = instance
	})
	return presenceUsecaseInstance
}

// GetUsers lists every user present in the presence log, in ascending user id
// order, decorated with the directory name and avatar when the directory
// knows the user.
func (uc *presenceUsecase) GetUsers(ctx context.Context) ([]responses.User, error) {
	data, err := uc.PresenceSource.Get(ctx)
	if err != nil {
		return nil, err
	}
	directory, err := uc.UserDirectorySource.Get(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int, 0, len(data))
	for userID := range data {
		userIDs = append(userIDs, userID)
	}
	sort.Ints(userIDs)

	users := make([]responses.User, 0, len(userIDs))
	for _, userID := range userIDs {
		user := responses.User{
			UserID: userID,
			Name:   fmt.Sprintf(constvars.UserNameFallbackFormat, userID),
		}
		if entry, ok := directory[userID]; ok {
			user.Name = entry.Name
			user.Avatar = entry.Avatar
		}
		users = append(users, user)
	}
	return users, nil
}

// MeanTimeWeekday returns 7 rows of [label, mean presence seconds], one per
// weekday starting Monday. Weekdays without observations get a zero mean.
func (uc *presenceUsecase) MeanTimeWeekday(ctx context.Context, userID int) ([]responses.WeekdayRow, error) {
	records, err := uc.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekdays := GroupByWeekday(records)
	rows := make([]responses.WeekdayRow, 0, len(weekdays))
	for weekday, intervals := range weekdays {
		rows = append(rows, responses.WeekdayRow{constvars.WeekdayLabels[weekday], utils.Mean(intervals)})
	}
	return rows, nil
}

// PresenceWeekday returns a header row followed by 7 rows of
// [label, total presence seconds].
func (uc *presenceUsecase) PresenceWeekday(ctx context.Context, userID int) ([]responses.WeekdayRow, error) {
	records, err := uc.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekdays := GroupByWeekday(records)
	rows := make([]responses.WeekdayRow, 0, len(weekdays)+1)
	rows = append(rows, responses.WeekdayRow{constvars.PresenceWeekdayHeaderLabel, constvars.PresenceWeekdayHeaderValue})
	for weekday, intervals := range weekdays {
		total := 0
		for _, interval := range intervals {
			total += interval
		}
		rows = append(rows, responses.WeekdayRow{constvars.WeekdayLabels[weekday], total})
	}
	return rows, nil
}

// PresenceStartEnd returns [label, mean start, mean end] rows for the
// weekdays that have observations, in ascending weekday order.
func (uc *presenceUsecase) PresenceStartEnd(ctx context.Context, userID int) ([]responses.WeekdayRow, error) {
	records, err := uc.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStats := MeanStartEndByWeekday(records)
	rows := make([]responses.WeekdayRow, 0, len(weekStats))
	for _, stat := range weekStats {
		rows = append(rows, responses.WeekdayRow{constvars.WeekdayLabels[stat.Weekday], stat.Start, stat.End})
	}
	return rows, nil
}

func (uc *presenceUsecase) userRecords(ctx context.Context, userID int) (map[models.Date]models.PresenceRecord, error) {
	data, err := uc.PresenceSource.Get(ctx)
	if err != nil {
		return nil, err
	}
	records, ok := data[userID]
	if !ok {
		uc.Log.Debug("requested user not found in presence data",
			zap.Int(constvars.LoggingUserIDKey, userID),
		)
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return records, nil
}
