// file: services/ranking.go
package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nartbuilds/yaolin-bets/models"
)

// 本文件是排行计算的核心：队伍总分、队伍排名、分角色演员排名和角色统计。
// 全部是纯函数，不碰数据库，入参都是请求期间已经取好的副本。

// TeamStanding 排行榜排序用的中间结构
type TeamStanding struct {
	TeamID     uint32
	UserID     uint32
	Username   string
	PaidEntry  bool
	TotalScore uint
	Locked     bool
	UpdatedAt  time.Time
	Revealed   bool
	Rank       uint
}

// RankedPerformer 带名次的演员
type RankedPerformer struct {
	Performer models.Performer
	Score     uint
	Rank      uint
}

// RoleStats 单个角色的全池统计
type RoleStats struct {
	Average float64 `json:"average_score"`
	Max     uint    `json:"highest_score"`
	Min     uint    `json:"lowest_score"`
}

// ComputeTeamScore 计算队伍总分：每个位置取该演员在"该角色"上的分项评分求和。
// 演员的 tail 分只在他被排在 tail 位时才计入。
// 五个引用必须都能解析且互不相同，违反属于调用方 bug，直接报错而不是容忍。
func ComputeTeamScore(team models.Team, performersByID map[uint32]models.Performer) (uint, error) {
	seen := make(map[uint32]models.Role, 5)
	var total uint
	for _, role := range models.Roles() {
		id := team.PerformerIDForRole(role)
		if prev, dup := seen[id]; dup {
			return 0, fmt.Errorf("duplicate performer %d assigned to both %s and %s", id, prev, role)
		}
		seen[id] = role

		p, ok := performersByID[id]
		if !ok {
			return 0, fmt.Errorf("performer %d for role %s not found", id, role)
		}
		score, err := p.ScoreForRole(role)
		if err != nil {
			return 0, err
		}
		total += score
	}
	return total, nil
}

// RankTeams 按总分降序排名，同分时按 updated_at 降序（后提交者名次靠前）。
// 名次是位置序号，从 1 开始严格递增，同分不并列。
func RankTeams(standings []TeamStanding) []TeamStanding {
	ranked := make([]TeamStanding, len(standings))
	copy(ranked, standings)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].UpdatedAt.After(ranked[j].UpdatedAt)
	})

	for i := range ranked {
		ranked[i].Rank = uint(i + 1)
	}
	return ranked
}

// RankPerformersByRole 按指定角色的分项评分降序排名。
// 同分按输入顺序稳定排列，名次同样是位置序号。
// 选秀榜（只含已亮相队伍选中的演员）和总榜（全池）各自独立调用本函数，
// 两个池子分开排，不做下标换算。
func RankPerformersByRole(performers []models.Performer, role models.Role) ([]RankedPerformer, error) {
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("unknown role: %s", role)
	}

	ranked := make([]RankedPerformer, 0, len(performers))
	for _, p := range performers {
		score, err := p.ScoreForRole(role)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedPerformer{Performer: p, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = uint(i + 1)
	}
	return ranked, nil
}

// AggregateRoleStatistics 计算某角色全池的平均分（四舍五入到一位小数）、最高分和最低分。
// 空池直接报错，不让 NaN 往下传。
func AggregateRoleStatistics(performers []models.Performer, role models.Role) (RoleStats, error) {
	if !models.IsValidRole(role) {
		return RoleStats{}, fmt.Errorf("unknown role: %s", role)
	}
	if len(performers) == 0 {
		return RoleStats{}, fmt.Errorf("no performers to aggregate for role %s", role)
	}

	var sum uint
	stats := RoleStats{}
	for i, p := range performers {
		score, err := p.ScoreForRole(role)
		if err != nil {
			return RoleStats{}, err
		}
		sum += score
		if i == 0 || score > stats.Max {
			stats.Max = score
		}
		if i == 0 || score < stats.Min {
			stats.Min = score
		}
	}

	avg := float64(sum) / float64(len(performers))
	stats.Average = math.Floor(avg*10+0.5) / 10
	return stats, nil
}
