// file: dto/analysis.go
package dto

// RankedPerformerItem 角色榜单条记录
type RankedPerformerItem struct {
	ID        uint32  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Score     uint    `json:"score"`
	Rank      uint    `json:"rank"`
}

// RoleRankingResp 单个角色的榜单和统计
type RoleRankingResp struct {
	Role         string                `json:"role"`
	Performers   []RankedPerformerItem `json:"performers"`
	AverageScore float64               `json:"average_score"`
	HighestScore uint                  `json:"highest_score"`
	LowestScore  uint                  `json:"lowest_score"`
}

// AnalysisResp 全角色分析视图
type AnalysisResp struct {
	RoleRankings    []RoleRankingResp `json:"role_rankings"`
	TotalPerformers int               `json:"total_performers"`
}
