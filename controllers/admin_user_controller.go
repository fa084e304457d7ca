// file: controllers/admin_user_controller.go
package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// --- 仅管理员可访问的接口 ---

// AdminGetUsers 用户列表，最新注册的排前面
func AdminGetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("AdminGetUsers: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	resultUsers := make([]gin.H, 0, len(users))
	for _, user := range users {
		resultUsers = append(resultUsers, gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"paid_entry": user.PaidEntry,
			"created_at": user.CreatedAt,
		})
	}

	utils.Success(c, "success", gin.H{
		"total": len(resultUsers),
		"users": resultUsers,
	})
}

// AdminUpdateUserPaid 标记用户是否已缴纳报名费
func AdminUpdateUserPaid(c *gin.Context) {
	targetUserID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var req struct {
		Paid *bool `json:"paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	if err := database.DB.Model(&user).Update("paid_entry", *req.Paid).Error; err != nil {
		log.Printf("AdminUpdateUserPaid: update user %d: %v", user.ID, err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	// 缴费标记出现在排行榜负载里
	services.InvalidateLeaderboardCache()

	utils.Success(c, "Payment status updated", gin.H{
		"user_id":    user.ID,
		"username":   user.Username,
		"paid_entry": *req.Paid,
	})
}
