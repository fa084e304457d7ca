// file: dto/leaderboard.go
package dto

import (
	"time"
)

// RoleSlot 亮相队伍某个位置的演员信息
// draft_rank 只在已亮相队伍选中的演员池内排，overall_rank 在全池内排，两榜独立
type RoleSlot struct {
	PerformerID uint32  `json:"performer_id"`
	Name        string  `json:"name"`
	AvatarURL   *string `json:"avatar_url"`
	Score       uint    `json:"score"`
	DraftRank   uint    `json:"draft_rank"`
	OverallRank uint    `json:"overall_rank"`
}

// LeaderboardEntry 排行榜单条记录
// 未亮相的队伍 total_score 固定为 0、performers 省略，
// 外部只能看到队伍存在、用户名、缴费标记和更新时间
type LeaderboardEntry struct {
	Rank       uint                `json:"rank"`
	TeamID     uint32              `json:"team_id"`
	UserID     uint32              `json:"user_id"`
	Username   string              `json:"username"`
	PaidEntry  bool                `json:"paid_entry"`
	TotalScore uint                `json:"total_score"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Revealed   bool                `json:"revealed"`
	Performers map[string]RoleSlot `json:"performers,omitempty"`
}

// PrizePoolSummary 奖池汇总：每个已缴费参赛者 5 元
type PrizePoolSummary struct {
	TotalEntries int  `json:"total_entries"`
	PaidEntries  int  `json:"paid_entries"`
	Amount       uint `json:"amount"`
}

// LeaderboardResp 排行榜响应
type LeaderboardResp struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	CNYStage    string             `json:"cny_stage"`
	PrizePool   PrizePoolSummary   `json:"prize_pool"`
}
