// file: models/team.go
package models

import (
	"time"
)

// Team 对应 yaolin_team 表
// 每个用户只能有一支队伍（user_id 唯一），五个角色位各引用一名演员，
// 五个引用必须互不相同；total_score 为冗余字段，保存时由服务端重算
type Team struct {
	ID         uint32    `gorm:"primarykey" json:"id"`
	UserID     uint32    `gorm:"unique;not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	HeadID     uint32    `gorm:"not null" json:"head_id"`
	TailID     uint32    `gorm:"not null" json:"tail_id"`
	DrumID     uint32    `gorm:"not null" json:"drum_id"`
	GongID     uint32    `gorm:"not null" json:"gong_id"`
	CymbalID   uint32    `gorm:"not null" json:"cymbal_id"`
	TotalScore uint      `gorm:"not null;default:0" json:"total_score"`
	Locked     bool      `gorm:"not null;default:false" json:"locked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "yaolin_team"
}

// PerformerIDForRole 按角色取对应位置上的演员 ID
func (t Team) PerformerIDForRole(role Role) uint32 {
	switch role {
	case RoleHead:
		return t.HeadID
	case RoleTail:
		return t.TailID
	case RoleDrum:
		return t.DrumID
	case RoleGong:
		return t.GongID
	case RoleCymbal:
		return t.CymbalID
	}
	return 0
}

// PerformerIDs 返回五个位置的演员 ID，顺序与 Roles() 一致
func (t Team) PerformerIDs() []uint32 {
	return []uint32{t.HeadID, t.TailID, t.DrumID, t.GongID, t.CymbalID}
}
