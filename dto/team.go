// file: dto/team.go
package dto

// ========== 请求 DTO ==========

// SaveTeamReq 整队提交：五个位置一起交、一起校验，不支持改单个位置
type SaveTeamReq struct {
	HeadID   uint32 `json:"head_id" binding:"required"`
	TailID   uint32 `json:"tail_id" binding:"required"`
	DrumID   uint32 `json:"drum_id" binding:"required"`
	GongID   uint32 `json:"gong_id" binding:"required"`
	CymbalID uint32 `json:"cymbal_id" binding:"required"`
}

// PerformerIDs 返回五个位置的演员 ID，顺序为 head/tail/drum/gong/cymbal
func (r SaveTeamReq) PerformerIDs() []uint32 {
	return []uint32{r.HeadID, r.TailID, r.DrumID, r.GongID, r.CymbalID}
}

// HasDistinctPerformers 校验五个引用互不相同
func (r SaveTeamReq) HasDistinctPerformers() bool {
	seen := make(map[uint32]struct{}, 5)
	for _, id := range r.PerformerIDs() {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// ========== 响应 DTO ==========

// TeamDetailResp 自己队伍的完整视图
type TeamDetailResp struct {
	ID         uint32                   `json:"id"`
	UserID     uint32                   `json:"user_id"`
	TotalScore uint                     `json:"total_score"`
	Locked     bool                     `json:"locked"`
	UpdatedAt  string                   `json:"updated_at"`
	Performers map[string]PerformerMini `json:"performers"`
}

// PerformerMini 队伍视图里单个位置的演员信息
type PerformerMini struct {
	ID        uint32  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Score     uint    `json:"score"`
}
