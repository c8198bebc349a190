package presence

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"sync"

	"presence-service/internal/app/config"
	"presence-service/internal/app/contracts"
	"presence-service/internal/app/models"
	"presence-service/internal/pkg/constvars"
	"presence-service/internal/pkg/exceptions"
	"presence-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type presenceCSVRepository struct {
	Log         *zap.Logger
	DataCSVPath string
}

var (
	presenceCSVRepositoryInstance contracts.PresenceRepository
	oncePresenceCSVRepository     sync.Once
)

func NewPresenceCSVRepository(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PresenceRepository {
	oncePresenceCSVRepository.Do(func() {
		instance := &presenceCSVRepository{
			Log:         logger,
			DataCSVPath: internalConfig.Presence.DataCSVPath,
		}
		presenceCSVRepositoryInstance = instance
	})
	return presenceCSVRepositoryInstance
}

// LoadPresence reads the whole presence log and groups it by user id and
// date. A row is counted only when it has exactly 4 fields and every field
// parses; anything else (headers, footers, mangled rows) is skipped without
// aborting the load. A later row for the same user and date overwrites the
// earlier one.
func (repo *presenceCSVRepository) LoadPresence(ctx context.Context) (models.PresenceByUser, error) {
	file, err := os.Open(repo.DataCSVPath)
	if err != nil {
		return nil, exceptions.ErrDataSourceUnavailable(err, repo.DataCSVPath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	data := models.PresenceByUser{}
	for lineIndex := 0; ; lineIndex++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			repo.Log.Debug("skipping unreadable presence row",
				zap.String(constvars.LoggingSourceKey, repo.DataCSVPath),
				zap.Int(constvars.LoggingLineIndexKey, lineIndex),
				zap.Error(err),
			)
			continue
		}
		if len(row) != 4 {
			continue
		}

		userID, date, record, err := parsePresenceRow(row)
		if err != nil {
			repo.Log.Debug("skipping malformed presence row",
				zap.String(constvars.LoggingSourceKey, repo.DataCSVPath),
				zap.Int(constvars.LoggingLineIndexKey, lineIndex),
				zap.Error(err),
			)
			continue
		}

		if _, ok := data[userID]; !ok {
			data[userID] = map[models.Date]models.PresenceRecord{}
		}
		data[userID][date] = record
	}

	return data, nil
}

func parsePresenceRow(row []string) (int, models.Date, models.PresenceRecord, error) {
	userID, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, models.Date{}, models.PresenceRecord{}, err
	}
	date, err := utils.ParseDate(row[1])
	if err != nil {
		return 0, models.Date{}, models.PresenceRecord{}, err
	}
	start, err := utils.ParseTimeOfDay(row[2])
	if err != nil {
		return 0, models.Date{}, models.PresenceRecord{}, err
	}
	end, err := utils.ParseTimeOfDay(row[3])
	if err != nil {
		return 0, models.Date{}, models.PresenceRecord{}, err
	}
	return userID, date, models.PresenceRecord{Start: start, End: end}, nil
}
