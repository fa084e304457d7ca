// file: services/ranking_test.go
package services

import (
	"testing"
	"time"

	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/stretchr/testify/require"
)

func performerWithScores(id uint32, name string, head, tail, drum, gong, cymbal uint) models.Performer {
	return models.Performer{
		ID:          id,
		Name:        name,
		ScoreHead:   head,
		ScoreTail:   tail,
		ScoreDrum:   drum,
		ScoreGong:   gong,
		ScoreCymbal: cymbal,
	}
}

// 固定的五人阵容：A→head(90) B→tail(85) C→drum(70) D→gong(60) E→cymbal(95)
func fixtureLineup() (models.Team, map[uint32]models.Performer) {
	performers := map[uint32]models.Performer{
		1: performerWithScores(1, "A", 90, 10, 10, 10, 10),
		2: performerWithScores(2, "B", 10, 85, 10, 10, 10),
		3: performerWithScores(3, "C", 10, 10, 70, 10, 10),
		4: performerWithScores(4, "D", 10, 10, 10, 60, 10),
		5: performerWithScores(5, "E", 10, 10, 10, 10, 95),
	}
	team := models.Team{HeadID: 1, TailID: 2, DrumID: 3, GongID: 4, CymbalID: 5}
	return team, performers
}

func TestComputeTeamScore(t *testing.T) {
	team, performers := fixtureLineup()

	total, err := ComputeTeamScore(team, performers)
	require.NoError(t, err)
	require.Equal(t, uint(90+85+70+60+95), total)
}

func TestComputeTeamScoreUsesRoleSpecificScore(t *testing.T) {
	// E 的 cymbal 分是 95，但排在 head 位时只计 head 分
	_, performers := fixtureLineup()
	team := models.Team{HeadID: 5, TailID: 2, DrumID: 3, GongID: 4, CymbalID: 1}

	total, err := ComputeTeamScore(team, performers)
	require.NoError(t, err)
	require.Equal(t, uint(10+85+70+60+10), total)
}

func TestComputeTeamScoreDuplicatePerformer(t *testing.T) {
	team, performers := fixtureLineup()
	team.TailID = team.HeadID

	_, err := ComputeTeamScore(team, performers)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate performer")
}

func TestComputeTeamScoreMissingPerformer(t *testing.T) {
	team, performers := fixtureLineup()
	delete(performers, team.DrumID)

	_, err := ComputeTeamScore(team, performers)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestRankTeamsEmpty(t *testing.T) {
	ranked := RankTeams(nil)
	require.Empty(t, ranked)
}

func TestRankTeamsStrictlyIncreasingRanks(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	standings := []TeamStanding{
		{TeamID: 1, TotalScore: 300, UpdatedAt: base},
		{TeamID: 2, TotalScore: 450, UpdatedAt: base.Add(time.Minute)},
		{TeamID: 3, TotalScore: 450, UpdatedAt: base.Add(2 * time.Minute)},
		{TeamID: 4, TotalScore: 120, UpdatedAt: base},
	}

	ranked := RankTeams(standings)
	require.Len(t, ranked, 4)
	for i, s := range ranked {
		require.Equal(t, uint(i+1), s.Rank, "rank must be positional with no gaps")
	}
	// 入参不被改动
	require.Equal(t, uint(0), standings[0].Rank)
}

func TestRankTeamsTieBreakLaterUpdateWins(t *testing.T) {
	// 同为 400 分，T=20 提交的队伍名次更靠前
	standings := []TeamStanding{
		{TeamID: 10, TotalScore: 400, UpdatedAt: time.Unix(10, 0)},
		{TeamID: 20, TotalScore: 400, UpdatedAt: time.Unix(20, 0)},
	}

	ranked := RankTeams(standings)
	require.Equal(t, uint32(20), ranked[0].TeamID)
	require.Equal(t, uint(1), ranked[0].Rank)
	require.Equal(t, uint32(10), ranked[1].TeamID)
	require.Equal(t, uint(2), ranked[1].Rank)
}

func TestRankPerformersByRole(t *testing.T) {
	performers := []models.Performer{
		performerWithScores(1, "A", 50, 0, 0, 0, 0),
		performerWithScores(2, "B", 90, 0, 0, 0, 0),
		performerWithScores(3, "C", 70, 0, 0, 0, 0),
	}

	ranked, err := RankPerformersByRole(performers, models.RoleHead)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	require.Equal(t, uint32(2), ranked[0].Performer.ID)
	require.Equal(t, uint(1), ranked[0].Rank)
	require.Equal(t, uint32(3), ranked[1].Performer.ID)
	require.Equal(t, uint(2), ranked[1].Rank)
	require.Equal(t, uint32(1), ranked[2].Performer.ID)
	require.Equal(t, uint(3), ranked[2].Rank)
}

func TestRankPerformersByRoleStableTies(t *testing.T) {
	performers := []models.Performer{
		performerWithScores(1, "A", 0, 0, 80, 0, 0),
		performerWithScores(2, "B", 0, 0, 80, 0, 0),
	}

	ranked, err := RankPerformersByRole(performers, models.RoleDrum)
	require.NoError(t, err)
	// 同分按输入顺序稳定排列，名次仍然严格递增
	require.Equal(t, uint32(1), ranked[0].Performer.ID)
	require.Equal(t, uint(1), ranked[0].Rank)
	require.Equal(t, uint32(2), ranked[1].Performer.ID)
	require.Equal(t, uint(2), ranked[1].Rank)
}

func TestRankPerformersByRoleUnknownRole(t *testing.T) {
	_, err := RankPerformersByRole(nil, models.Role("bogus"))
	require.Error(t, err)
}

func TestAggregateRoleStatisticsSinglePerformer(t *testing.T) {
	performers := []models.Performer{
		performerWithScores(1, "A", 0, 77, 0, 0, 0),
	}

	stats, err := AggregateRoleStatistics(performers, models.RoleTail)
	require.NoError(t, err)
	require.Equal(t, 77.0, stats.Average)
	require.Equal(t, uint(77), stats.Max)
	require.Equal(t, uint(77), stats.Min)
}

func TestAggregateRoleStatisticsEmptySet(t *testing.T) {
	_, err := AggregateRoleStatistics(nil, models.RoleHead)
	require.Error(t, err)
}

func TestAggregateRoleStatisticsRoundsHalfUp(t *testing.T) {
	// 平均 0.25，四舍五入到一位小数应为 0.3（而不是银行家舍入的 0.2）
	performers := []models.Performer{
		performerWithScores(1, "A", 1, 0, 0, 0, 0),
		performerWithScores(2, "B", 0, 0, 0, 0, 0),
		performerWithScores(3, "C", 0, 0, 0, 0, 0),
		performerWithScores(4, "D", 0, 0, 0, 0, 0),
	}

	stats, err := AggregateRoleStatistics(performers, models.RoleHead)
	require.NoError(t, err)
	require.Equal(t, 0.3, stats.Average)
	require.Equal(t, uint(1), stats.Max)
	require.Equal(t, uint(0), stats.Min)
}

func TestAggregateRoleStatisticsMean(t *testing.T) {
	performers := []models.Performer{
		performerWithScores(1, "A", 0, 0, 0, 85, 0),
		performerWithScores(2, "B", 0, 0, 0, 90, 0),
		performerWithScores(3, "C", 0, 0, 0, 78, 0),
	}

	stats, err := AggregateRoleStatistics(performers, models.RoleGong)
	require.NoError(t, err)
	require.Equal(t, 84.3, stats.Average)
	require.Equal(t, uint(90), stats.Max)
	require.Equal(t, uint(78), stats.Min)
}
