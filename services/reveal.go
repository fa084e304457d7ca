// file: services/reveal.go
package services

import (
	"github.com/nartbuilds/yaolin-bets/models"
)

// ShouldReveal 判定某支队伍的阵容对当前访问者是否可见：
// 进入 during_cny 阶段后全员可见，否则只有队主本人可见。
// viewerUserID 为 0 表示未登录，永远不等于任何队主。
//
// 判定为 false 时，对外负载里总分必须置 0、阵容必须省略——
// 否则第三方可以通过总分反推阵容。
func ShouldReveal(ownerUserID uint32, stage models.CNYStage, viewerUserID uint32) bool {
	if stage == models.StageDuringCNY {
		return true
	}
	return viewerUserID != 0 && viewerUserID == ownerUserID
}
