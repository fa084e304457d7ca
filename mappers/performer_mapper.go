// file: mappers/performer_mapper.go
package mappers

import (
	"github.com/nartbuilds/yaolin-bets/dto"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/services"
)

func MapRankedToItem(rp services.RankedPerformer) dto.RankedPerformerItem {
	return dto.RankedPerformerItem{
		ID:        rp.Performer.ID,
		Name:      rp.Performer.Name,
		AvatarURL: rp.Performer.AvatarURL,
		Score:     rp.Score,
		Rank:      rp.Rank,
	}
}

// MapTeamToDetailResp 组装自己队伍的完整视图，五个位置带各自角色的分项评分
func MapTeamToDetailResp(team models.Team, performersByID map[uint32]models.Performer) dto.TeamDetailResp {
	slots := make(map[string]dto.PerformerMini, 5)
	for _, role := range models.Roles() {
		p := performersByID[team.PerformerIDForRole(role)]
		score, _ := p.ScoreForRole(role)
		slots[string(role)] = dto.PerformerMini{
			ID:        p.ID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
			Score:     score,
		}
	}
	return dto.TeamDetailResp{
		ID:         team.ID,
		UserID:     team.UserID,
		TotalScore: team.TotalScore,
		Locked:     team.Locked,
		UpdatedAt:  team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Performers: slots,
	}
}
