// file: services/leaderboard_service.go
package services

import (
	"fmt"

	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/dto"
	"github.com/nartbuilds/yaolin-bets/models"
)

// PrizePerPaidEntry 每个已缴费参赛者贡献的奖池金额
const PrizePerPaidEntry = 5

// BuildLeaderboard 组装排行榜负载。
// 先按亮相规则把未亮相队伍的总分压成 0，再参与排序——
// 赛程未开时第三方连名次都推不出真实分数。
func BuildLeaderboard(limit int, viewerUserID uint32) (*dto.LeaderboardResp, error) {
	stage := CurrentStage()

	var teams []models.Team
	if err := database.DB.Preload("User").
		Order("updated_at desc").Limit(limit).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	var performers []models.Performer
	if err := database.DB.Order("name").Find(&performers).Error; err != nil {
		return nil, fmt.Errorf("fetch performers: %w", err)
	}
	performersByID := make(map[uint32]models.Performer, len(performers))
	for _, p := range performers {
		performersByID[p.ID] = p
	}

	// 总榜名次：每个角色在全池内独立排一次
	overallRanks := make(map[models.Role]map[uint32]uint, 5)
	for _, role := range models.Roles() {
		ranked, err := RankPerformersByRole(performers, role)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint32]uint, len(ranked))
		for _, rp := range ranked {
			byID[rp.Performer.ID] = rp.Rank
		}
		overallRanks[role] = byID
	}

	// 亮相判定 + 真实总分计算
	revealed := make(map[uint32]bool, len(teams))
	standings := make([]TeamStanding, 0, len(teams))
	for _, t := range teams {
		show := ShouldReveal(t.UserID, stage, viewerUserID)
		revealed[t.ID] = show

		var total uint
		if show {
			score, err := ComputeTeamScore(t, performersByID)
			if err != nil {
				return nil, fmt.Errorf("team %d: %w", t.ID, err)
			}
			total = score
		}

		standings = append(standings, TeamStanding{
			TeamID:     t.ID,
			UserID:     t.UserID,
			Username:   t.User.Username,
			PaidEntry:  t.User.PaidEntry,
			TotalScore: total,
			Locked:     t.Locked,
			UpdatedAt:  t.UpdatedAt,
			Revealed:   show,
		})
	}
	standings = RankTeams(standings)

	// 选秀榜名次：只在已亮相队伍选中的演员池内排，是全池的过滤子集，独立重排
	draftRanks := make(map[models.Role]map[uint32]uint, 5)
	for _, role := range models.Roles() {
		var pool []models.Performer
		inPool := make(map[uint32]bool)
		for _, t := range teams {
			if !revealed[t.ID] {
				continue
			}
			id := t.PerformerIDForRole(role)
			if inPool[id] {
				continue
			}
			if p, ok := performersByID[id]; ok {
				pool = append(pool, p)
				inPool[id] = true
			}
		}
		ranked, err := RankPerformersByRole(pool, role)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint32]uint, len(ranked))
		for _, rp := range ranked {
			byID[rp.Performer.ID] = rp.Rank
		}
		draftRanks[role] = byID
	}

	teamsByID := make(map[uint32]models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	entries := make([]dto.LeaderboardEntry, 0, len(standings))
	pool := dto.PrizePoolSummary{}
	for _, s := range standings {
		entry := dto.LeaderboardEntry{
			Rank:       s.Rank,
			TeamID:     s.TeamID,
			UserID:     s.UserID,
			Username:   s.Username,
			PaidEntry:  s.PaidEntry,
			TotalScore: s.TotalScore,
			UpdatedAt:  s.UpdatedAt,
			Revealed:   s.Revealed,
		}
		if s.Revealed {
			t := teamsByID[s.TeamID]
			slots := make(map[string]dto.RoleSlot, 5)
			for _, role := range models.Roles() {
				p := performersByID[t.PerformerIDForRole(role)]
				score, err := p.ScoreForRole(role)
				if err != nil {
					return nil, err
				}
				slots[string(role)] = dto.RoleSlot{
					PerformerID: p.ID,
					Name:        p.Name,
					AvatarURL:   p.AvatarURL,
					Score:       score,
					DraftRank:   draftRanks[role][p.ID],
					OverallRank: overallRanks[role][p.ID],
				}
			}
			entry.Performers = slots
		}

		pool.TotalEntries++
		if s.PaidEntry {
			pool.PaidEntries++
		}
		entries = append(entries, entry)
	}
	pool.Amount = uint(pool.PaidEntries) * PrizePerPaidEntry

	return &dto.LeaderboardResp{
		Leaderboard: entries,
		CNYStage:    string(stage),
		PrizePool:   pool,
	}, nil
}
