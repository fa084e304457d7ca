// file: controllers/team_controller.go
package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/dto"
	"github.com/nartbuilds/yaolin-bets/mappers"
	"github.com/nartbuilds/yaolin-bets/middlewares"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetMyTeam 查询自己的队伍，没有队伍返回 null 而不是错误
func GetMyTeam(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var team models.Team
	err := database.DB.Where("user_id = ?", userID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Success(c, "success", gin.H{"team": nil})
			return
		}
		log.Printf("GetMyTeam: fetch team for user %d: %v", userID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var performers []models.Performer
	if err := database.DB.Where("id IN ?", team.PerformerIDs()).Find(&performers).Error; err != nil {
		log.Printf("GetMyTeam: fetch performers for team %d: %v", team.ID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}
	performersByID := make(map[uint32]models.Performer, len(performers))
	for _, p := range performers {
		performersByID[p.ID] = p
	}

	utils.Success(c, "success", gin.H{
		"team": mappers.MapTeamToDetailResp(team, performersByID),
	})
}

// SaveMyTeam 整队保存：五个位置一起提交、一起校验，按 user_id 覆盖式写入
func SaveMyTeam(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var req dto.SaveTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if !req.HasDistinctPerformers() {
		utils.Error(c, 1003, "五个位置必须选择不同的演员")
		return
	}

	// 赛程开始后阵容全局封盘
	if services.CurrentStage() == models.StageDuringCNY {
		utils.Error(c, 2006, "比赛已开始，阵容已封盘")
		return
	}

	// 管理员单独锁定的队伍也不能改
	var existing models.Team
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil && existing.Locked {
		utils.Error(c, 2007, "队伍已被锁定")
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("SaveMyTeam: fetch existing team for user %d: %v", userID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var performers []models.Performer
	if err := database.DB.Where("id IN ?", req.PerformerIDs()).Find(&performers).Error; err != nil {
		log.Printf("SaveMyTeam: fetch performers: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if len(performers) != 5 {
		utils.Error(c, 1004, "存在无效的演员选择")
		return
	}
	performersByID := make(map[uint32]models.Performer, 5)
	for _, p := range performers {
		performersByID[p.ID] = p
	}

	team := models.Team{
		UserID:   userID,
		HeadID:   req.HeadID,
		TailID:   req.TailID,
		DrumID:   req.DrumID,
		GongID:   req.GongID,
		CymbalID: req.CymbalID,
	}
	total, err := services.ComputeTeamScore(team, performersByID)
	if err != nil {
		utils.Error(c, 1004, "存在无效的演员选择")
		return
	}
	team.TotalScore = total
	team.UpdatedAt = time.Now()

	// 按 user_id 冲突更新，同一用户的并发保存在数据库层面串行化
	if err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"head_id", "tail_id", "drum_id", "gong_id", "cymbal_id",
			"total_score", "updated_at",
		}),
	}).Create(&team).Error; err != nil {
		log.Printf("SaveMyTeam: upsert team for user %d: %v", userID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	// 冲突更新时 Create 不回填主键，重查一次拿完整行
	if err := database.DB.Where("user_id = ?", userID).First(&team).Error; err != nil {
		log.Printf("SaveMyTeam: reload team for user %d: %v", userID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	services.InvalidateLeaderboardCache()

	utils.Success(c, "Team saved successfully", gin.H{
		"team": mappers.MapTeamToDetailResp(team, performersByID),
	})
}
