// file: controllers/analysis_controller.go
package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/dto"
	"github.com/nartbuilds/yaolin-bets/mappers"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// GetAnalysis 角色分析视图：每个角色的演员榜单（总榜名次）+ 平均/最高/最低分
func GetAnalysis(c *gin.Context) {
	search := c.Query("search")
	roleParam := models.Role(c.Query("role"))
	limitStr := c.DefaultQuery("limit", "12")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = 12
	}
	// 超过上限按上限截断，不退回缺省值
	if limit > 100 {
		limit = 100
	}

	db := database.DB.Model(&models.Performer{}).Order("name")
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	var performers []models.Performer
	if err := db.Find(&performers).Error; err != nil {
		log.Printf("GetAnalysis: fetch performers: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	roles := models.Roles()
	if roleParam != "" {
		if !models.IsValidRole(roleParam) {
			utils.Error(c, 1005, "无效的角色: "+string(roleParam))
			return
		}
		roles = []models.Role{roleParam}
	}

	rankings := make([]dto.RoleRankingResp, 0, len(roles))
	for _, role := range roles {
		ranking := dto.RoleRankingResp{
			Role:       string(role),
			Performers: []dto.RankedPerformerItem{},
		}

		// 空池没有统计意义，榜单和统计都留空
		if len(performers) > 0 {
			ranked, err := services.RankPerformersByRole(performers, role)
			if err != nil {
				log.Printf("GetAnalysis: rank role %s: %v", role, err)
				utils.Error(c, 5000, "数据库错误")
				return
			}
			if len(ranked) > limit {
				ranked = ranked[:limit]
			}
			for _, rp := range ranked {
				ranking.Performers = append(ranking.Performers, mappers.MapRankedToItem(rp))
			}

			stats, err := services.AggregateRoleStatistics(performers, role)
			if err != nil {
				log.Printf("GetAnalysis: aggregate role %s: %v", role, err)
				utils.Error(c, 5000, "数据库错误")
				return
			}
			ranking.AverageScore = stats.Average
			ranking.HighestScore = stats.Max
			ranking.LowestScore = stats.Min
		}

		rankings = append(rankings, ranking)
	}

	utils.Success(c, "success", dto.AnalysisResp{
		RoleRankings:    rankings,
		TotalPerformers: len(performers),
	})
}
