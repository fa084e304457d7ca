// file: services/setting_service.go
package services

import (
	"log"

	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"gorm.io/gorm/clause"
)

// CurrentStage 读取全局赛程阶段，缺省视为 before_cny
// 每个请求都现查数据库，设置表是唯一事实来源，不在进程内缓存
func CurrentStage() models.CNYStage {
	var setting models.AppSetting
	err := database.DB.Where("`key` = ?", models.SettingKeyCNYStage).First(&setting).Error
	if err != nil {
		return models.StageBeforeCNY
	}
	stage := models.CNYStage(setting.Value)
	if !models.IsValidStage(stage) {
		return models.StageBeforeCNY
	}
	return stage
}

// UpsertSetting 写入/覆盖一条设置
func UpsertSetting(key, value string) error {
	setting := models.AppSetting{Key: key, Value: value}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// InvalidateLeaderboardCache 清空排行榜相关的 Redis 缓存
// 任何可能影响榜单负载的写操作（存队、改缴费、切阶段、导入评分）之后调用；
// 锁定操作不在其列，locked 不出现在榜单负载里
func InvalidateLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
		log.Printf("Cleared %d leaderboard cache keys from Redis.", len(keys))
	}
}
