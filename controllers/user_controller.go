// file: controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// setSessionCookie 下发会话 Cookie，HttpOnly + Lax
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, token, utils.SessionMaxAge, "/", "", false, true)
}

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=20"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "用户名已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	token, err := utils.GenerateToken(newUser)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}
	setSessionCookie(c, token)

	utils.Success(c, "User registered successfully", gin.H{
		"id":         newUser.ID,
		"username":   newUser.Username,
		"paid_entry": newUser.PaidEntry,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// 与密码错误返回同样的提示，不暴露用户名是否存在
		utils.Error(c, 2002, "用户名或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "用户名或密码错误")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}
	setSessionCookie(c, token)

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"paid_entry": user.PaidEntry,
		},
	})
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	utils.Success(c, "Logout success", nil)
}
