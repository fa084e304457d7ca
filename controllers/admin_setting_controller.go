// file: controllers/admin_setting_controller.go
package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// GetSettings 读取全部设置，公开接口（前端要据此渲染赛程横幅）
func GetSettings(c *gin.Context) {
	var settings []models.AppSetting
	if err := database.DB.Find(&settings).Error; err != nil {
		log.Printf("GetSettings: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	settingsMap := make(map[string]string, len(settings))
	for _, s := range settings {
		settingsMap[s.Key] = s.Value
	}
	// 阶段开关没写过时按缺省值补上
	if _, ok := settingsMap[models.SettingKeyCNYStage]; !ok {
		settingsMap[models.SettingKeyCNYStage] = string(models.StageBeforeCNY)
	}

	utils.Success(c, "success", gin.H{"settings": settingsMap})
}

// AdminUpdateSetting 写入设置（管理员），cny_stage 的取值校验封闭枚举
func AdminUpdateSetting(c *gin.Context) {
	var req struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.Key == models.SettingKeyCNYStage && !models.IsValidStage(models.CNYStage(req.Value)) {
		utils.Error(c, 1005, "无效的阶段取值: "+req.Value)
		return
	}

	if err := services.UpsertSetting(req.Key, req.Value); err != nil {
		log.Printf("AdminUpdateSetting: upsert %s: %v", req.Key, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	// 阶段切换直接改变所有队伍的亮相状态
	services.InvalidateLeaderboardCache()

	utils.Success(c, "Setting updated", gin.H{
		"key":   req.Key,
		"value": req.Value,
	})
}
