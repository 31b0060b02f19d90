package cleanup

import (
	"testing"
	"time"

	"museum-api/database"
	"museum-api/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSweepRemovesOnlyExpiredCodes(t *testing.T) {
	db := setupDB(t)
	now := time.Now()

	user := users.User{Name: "keeper", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	expired := users.ConfirmationCode{UserID: user.ID, Code: "expired", ExpiresAt: now.Add(-time.Minute)}
	fresh := users.ConfirmationCode{UserID: user.ID, Code: "fresh", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&fresh).Error)

	sweeper := NewSweeper(db, time.Minute)

	removed, err := sweeper.Sweep(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	var remaining []users.ConfirmationCode
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Code)
}

func TestSweepOnEmptyTable(t *testing.T) {
	db := setupDB(t)
	sweeper := NewSweeper(db, time.Minute)

	removed, err := sweeper.Sweep(time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
