// file: controllers/leaderboard_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/dto"
	"github.com/nartbuilds/yaolin-bets/middlewares"
	"github.com/nartbuilds/yaolin-bets/services"
	"github.com/nartbuilds/yaolin-bets/utils"
)

// GetLeaderboard 查询排行榜，未登录也可访问
func GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = 50
	}
	// 超过上限按上限截断，不退回缺省值
	if limit > 100 {
		limit = 100
	}

	viewerID := middlewares.CurrentUserID(c)

	// 匿名视图对所有人相同，走 Redis 缓存；
	// 登录视图含访问者自己队伍的真实分数，每次现算
	cacheKey := fmt.Sprintf("leaderboard:anon:%d", limit)
	if viewerID == 0 && database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var resp dto.LeaderboardResp
			if json.Unmarshal([]byte(val), &resp) == nil {
				utils.Success(c, "success (from cache)", resp)
				return
			}
		}
	}

	resp, err := services.BuildLeaderboard(limit, viewerID)
	if err != nil {
		log.Printf("GetLeaderboard: %v", err)
		utils.Error(c, 5000, "数据库错误")
		return
	}

	if viewerID == 0 && database.RDB != nil {
		jsonData, err := json.Marshal(resp)
		if err == nil {
			// 缓存 15 秒，保证榜单准实时
			database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
		}
	}

	utils.Success(c, "success", resp)
}
