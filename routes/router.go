// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/controllers"
	"github.com/nartbuilds/yaolin-bets/middlewares"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户与会话 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
			usersPublic.POST("/logout", controllers.Logout)
		}

		// --- 演员池与分析，公开只读 ---
		apiV1.GET("/performers", controllers.GetPerformerList)
		apiV1.GET("/analysis", controllers.GetAnalysis)
		apiV1.GET("/settings", controllers.GetSettings)

		// --- 排行榜：未登录可看，登录后能看到自己队伍的真实分数 ---
		apiV1.GET("/leaderboard", middlewares.JWTTryAuthMiddleware(), controllers.GetLeaderboard)

		// --- 自己的队伍 ---
		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			teamRoutes.GET("/mine", controllers.GetMyTeam)
			teamRoutes.PUT("/mine", controllers.SaveMyTeam)
		}

		// --- 管理端：每个请求现查 is_admin ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.AdminAuthMiddleware())
		{
			adminRoutes.GET("/users", controllers.AdminGetUsers)
			adminRoutes.PUT("/users/:id/paid", controllers.AdminUpdateUserPaid)
			adminRoutes.GET("/teams", controllers.AdminGetTeams)
			adminRoutes.PUT("/teams/:id/lock", controllers.AdminUpdateTeamLock)
			// 批量锁定不能挂在 /teams/ 下，会和 :id 通配段冲突
			adminRoutes.PUT("/lock-all-teams", controllers.AdminLockAllTeams)
			adminRoutes.PUT("/settings", controllers.AdminUpdateSetting)
			adminRoutes.POST("/performers/import", controllers.AdminImportPerformers)
		}
	}

	return r
}
