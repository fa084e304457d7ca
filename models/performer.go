// file: models/performer.go
package models

import (
	"fmt"
	"time"
)

// Role 自定义角色类型，舞狮队伍的五个固定位置
type Role string

const (
	RoleHead   Role = "head"
	RoleTail   Role = "tail"
	RoleDrum   Role = "drum"
	RoleGong   Role = "gong"
	RoleCymbal Role = "cymbal"
)

// Roles 返回全部五个角色，顺序固定
func Roles() []Role {
	return []Role{RoleHead, RoleTail, RoleDrum, RoleGong, RoleCymbal}
}

// IsValidRole 校验角色是否属于封闭枚举
func IsValidRole(r Role) bool {
	switch r {
	case RoleHead, RoleTail, RoleDrum, RoleGong, RoleCymbal:
		return true
	}
	return false
}

// Performer 对应 yaolin_performer 表
// 五个分项评分由管理员导入，普通用户只读
type Performer struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	AvatarURL   *string   `gorm:"size:255" json:"avatar_url"`
	ScoreHead   uint      `gorm:"not null;default:0" json:"score_head"`
	ScoreTail   uint      `gorm:"not null;default:0" json:"score_tail"`
	ScoreDrum   uint      `gorm:"not null;default:0" json:"score_drum"`
	ScoreGong   uint      `gorm:"not null;default:0" json:"score_gong"`
	ScoreCymbal uint      `gorm:"not null;default:0" json:"score_cymbal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Performer) TableName() string {
	return "yaolin_performer"
}

// ScoreForRole 按角色取对应分项评分
// 用穷举匹配代替字符串拼列名，未知角色直接报错而不是静默返回 0
func (p Performer) ScoreForRole(role Role) (uint, error) {
	switch role {
	case RoleHead:
		return p.ScoreHead, nil
	case RoleTail:
		return p.ScoreTail, nil
	case RoleDrum:
		return p.ScoreDrum, nil
	case RoleGong:
		return p.ScoreGong, nil
	case RoleCymbal:
		return p.ScoreCymbal, nil
	}
	return 0, fmt.Errorf("unknown role: %s", role)
}
