// file: controllers/performer_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// GetPerformerList 演员全量列表，支持名称模糊搜索
func GetPerformerList(c *gin.Context) {
	search := c.Query("search")

	db := database.DB.Model(&models.Performer{}).Order("name")
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}

	var performers []models.Performer
	if err := db.Find(&performers).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "success", gin.H{
		"performers": performers,
		"total":      len(performers),
	})
}
