package users

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"presence-service/internal/app/config"
	"presence-service/internal/app/contracts"
	"presence-service/internal/app/models"
	"presence-service/internal/pkg/constvars"
	"presence-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userXMLRepository struct {
	Log          *zap.Logger
	UsersXMLPath string
}

var (
	userXMLRepositoryInstance contracts.UserDirectoryRepository
	onceUserXMLRepository     sync.Once
)

func NewUserXMLRepository(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.UserDirectoryRepository {
	onceUserXMLRepository.Do(func() {
		instance := &userXMLRepository{
			Log:          logger,
			UsersXMLPath: internalConfig.Presence.UsersXMLPath,
		}
		userXMLRepositoryInstance = instance
	})
	return userXMLRepositoryInstance
}

// Leaf nodes are pointers so that an absent element can be told apart from a
// present-but-empty one; the avatar prefix and avatar URLs depend on that
// distinction.
type usersDocument struct {
	Server *serverNode `xml:"server"`
	Users  []userNode  `xml:"users>user"`
}

type serverNode struct {
	Host     *string `xml:"host"`
	Port     *string `xml:"port"`
	Protocol *string `xml:"protocol"`
}

type userNode struct {
	ID     string  `xml:"id,attr"`
	Name   *string `xml:"name"`
	Avatar *string `xml:"avatar"`
}

// LoadUsers parses the user metadata document. Avatar URLs are absolute and
// only built when the document carries a complete server node (protocol,
// host, port) and the user carries an avatar path; otherwise the entry has
// no avatar. Entries without a name or with an unparsable id are skipped
// with a diagnostic instead of failing the whole load.
func (repo *userXMLRepository) LoadUsers(ctx context.Context) (models.UserDirectory, error) {
	file, err := os.Open(repo.UsersXMLPath)
	if err != nil {
		return nil, exceptions.ErrDataSourceUnavailable(err, repo.UsersXMLPath)
	}
	defer file.Close()

	var document usersDocument
	if err := xml.NewDecoder(file).Decode(&document); err != nil {
		return nil, exceptions.ErrDataSourceMalformed(err, repo.UsersXMLPath)
	}

	avatarPrefix := buildAvatarPrefix(document.Server)

	directory := models.UserDirectory{}
	for _, user := range document.Users {
		userID, err := strconv.Atoi(strings.TrimSpace(user.ID))
		if err != nil {
			repo.Log.Warn("skipping user entry with unparsable id",
				zap.String(constvars.LoggingSourceKey, repo.UsersXMLPath),
				zap.String("id", user.ID),
			)
			continue
		}
		if user.Name == nil || *user.Name == "" {
			repo.Log.Warn("skipping user entry without a name",
				zap.String(constvars.LoggingSourceKey, repo.UsersXMLPath),
				zap.Int(constvars.LoggingUserIDKey, userID),
			)
			continue
		}

		entry := models.UserEntry{Name: *user.Name}
		if avatarPrefix != "" && user.Avatar != nil {
			entry.Avatar = avatarPrefix + *user.Avatar
		}
		directory[userID] = entry
	}

	return directory, nil
}

func buildAvatarPrefix(server *serverNode) string {
	if server == nil {
		return ""
	}
	if server.Protocol == nil || server.Host == nil || server.Port == nil {
		return ""
	}
	return fmt.Sprintf("%s://%s:%s", *server.Protocol, *server.Host, *server.Port)
}
