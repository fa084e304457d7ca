// file: controllers/admin_performer_controller.go
package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
	"gorm.io/gorm/clause"
)

// AdminImportPerformers 批量导入/刷新演员池，按姓名覆盖更新。
// 分项评分只经由这条管理员通道写入，端上用户只读。
func AdminImportPerformers(c *gin.Context) {
	var req struct {
		Performers []struct {
			Name        string  `json:"name" binding:"required"`
			AvatarURL   *string `json:"avatar_url"`
			ScoreHead   uint    `json:"score_head"`
			ScoreTail   uint    `json:"score_tail"`
			ScoreDrum   uint    `json:"score_drum"`
			ScoreGong   uint    `json:"score_gong"`
			ScoreCymbal uint    `json:"score_cymbal"`
		} `json:"performers" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	rows := make([]models.Performer, 0, len(req.Performers))
	for _, p := range req.Performers {
		rows = append(rows, models.Performer{
			Name:        p.Name,
			AvatarURL:   p.AvatarURL,
			ScoreHead:   p.ScoreHead,
			ScoreTail:   p.ScoreTail,
			ScoreDrum:   p.ScoreDrum,
			ScoreGong:   p.ScoreGong,
			ScoreCymbal: p.ScoreCymbal,
		})
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"avatar_url", "score_head", "score_tail", "score_drum",
			"score_gong", "score_cymbal", "updated_at",
		}),
	}).Create(&rows).Error; err != nil {
		log.Printf("AdminImportPerformers: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	// 评分变动影响所有队伍的总分
	services.InvalidateLeaderboardCache()

	utils.Success(c, "Performers imported", gin.H{
		"imported": len(rows),
	})
}
