// file: controllers/admin_team_controller.go
package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
	"gorm.io/gorm"
)

// AdminGetTeams 队伍列表（管理端），阵容不受阶段限制全部可见。
// 排序与公开排行榜一致：总分降序、同分按更新时间降序。
func AdminGetTeams(c *gin.Context) {
	var teams []models.Team
	if err := database.DB.Preload("User").Order("updated_at desc").Find(&teams).Error; err != nil {
		log.Printf("AdminGetTeams: fetch teams: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var performers []models.Performer
	if err := database.DB.Find(&performers).Error; err != nil {
		log.Printf("AdminGetTeams: fetch performers: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}
	performersByID := make(map[uint32]models.Performer, len(performers))
	for _, p := range performers {
		performersByID[p.ID] = p
	}

	standings := make([]services.TeamStanding, 0, len(teams))
	for _, t := range teams {
		total, err := services.ComputeTeamScore(t, performersByID)
		if err != nil {
			log.Printf("AdminGetTeams: team %d: %v", t.ID, err)
			utils.Error(c, 5000, "数据库错误")
			return
		}
		standings = append(standings, services.TeamStanding{
			TeamID:     t.ID,
			UserID:     t.UserID,
			Username:   t.User.Username,
			PaidEntry:  t.User.PaidEntry,
			TotalScore: total,
			Locked:     t.Locked,
			UpdatedAt:  t.UpdatedAt,
		})
	}
	standings = services.RankTeams(standings)

	teamsByID := make(map[uint32]models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	resultTeams := make([]gin.H, 0, len(standings))
	for _, s := range standings {
		t := teamsByID[s.TeamID]
		slots := make(map[string]gin.H, 5)
		for _, role := range models.Roles() {
			p := performersByID[t.PerformerIDForRole(role)]
			score, _ := p.ScoreForRole(role)
			slots[string(role)] = gin.H{
				"performer_id": p.ID,
				"name":         p.Name,
				"score":        score,
			}
		}
		resultTeams = append(resultTeams, gin.H{
			"rank":        s.Rank,
			"team_id":     s.TeamID,
			"username":    s.Username,
			"total_score": s.TotalScore,
			"locked":      s.Locked,
			"updated_at":  s.UpdatedAt,
			"performers":  slots,
		})
	}

	utils.Success(c, "success", gin.H{
		"total": len(resultTeams),
		"teams": resultTeams,
	})
}

// AdminUpdateTeamLock 锁定/解锁单支队伍
func AdminUpdateTeamLock(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var req struct {
		Locked *bool `json:"locked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	// 用 UpdateColumn 只写 locked 一列：updated_at 是榜单的同分判定键，
	// 记录的是阵容最后提交时间，锁定操作不能动它
	if err := database.DB.Model(&team).UpdateColumn("locked", *req.Locked).Error; err != nil {
		log.Printf("AdminUpdateTeamLock: update team %d: %v", team.ID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "Team lock status updated", gin.H{
		"team_id": team.ID,
		"locked":  *req.Locked,
	})
}

// AdminLockAllTeams 一键锁定/解锁全部队伍
func AdminLockAllTeams(c *gin.Context) {
	var req struct {
		Locked *bool `json:"locked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	// 同样只写 locked 一列，批量锁定不能重写全表的提交时间
	result := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Team{}).UpdateColumn("locked", *req.Locked)
	if result.Error != nil {
		log.Printf("AdminLockAllTeams: %v", result.Error)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "Teams updated", gin.H{
		"locked":   *req.Locked,
		"affected": result.RowsAffected,
	})
}
