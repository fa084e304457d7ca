// file: testutil/testutil.go
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SetupTestDB 打开一个内存 SQLite 库、建表，并接管全局 database.DB
// 每个测试拿到的都是全新的空库
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Performer{}, &models.Team{}, &models.AppSetting{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.DB = db
	return db
}

// CreateUser 建一个测试用户，密码经正常哈希流程
func CreateUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}
	return user
}

// CreatePerformer 建一个测试演员，五个分项评分按 head/tail/drum/gong/cymbal 顺序传入
func CreatePerformer(t *testing.T, db *gorm.DB, name string, scores [5]uint) models.Performer {
	t.Helper()

	p := models.Performer{
		Name:        name,
		ScoreHead:   scores[0],
		ScoreTail:   scores[1],
		ScoreDrum:   scores[2],
		ScoreGong:   scores[3],
		ScoreCymbal: scores[4],
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("Failed to create test performer %s: %v", name, err)
	}
	return p
}

// CreateTeam 建一支测试队伍，五个位置按 head/tail/drum/gong/cymbal 顺序传入演员 ID
func CreateTeam(t *testing.T, db *gorm.DB, user models.User, performerIDs [5]uint32) models.Team {
	t.Helper()

	team := models.Team{
		UserID:   user.ID,
		HeadID:   performerIDs[0],
		TailID:   performerIDs[1],
		DrumID:   performerIDs[2],
		GongID:   performerIDs[3],
		CymbalID: performerIDs[4],
	}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("Failed to create test team for user %s: %v", user.Username, err)
	}
	return team
}

// SetStage 写入全局赛程阶段
func SetStage(t *testing.T, db *gorm.DB, stage models.CNYStage) {
	t.Helper()

	setting := models.AppSetting{Key: models.SettingKeyCNYStage, Value: string(stage)}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error; err != nil {
		t.Fatalf("Failed to set stage: %v", err)
	}
}

// SessionFor 给测试用户签发会话令牌
func SessionFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token for %s: %v", user.Username, err)
	}
	return token
}
