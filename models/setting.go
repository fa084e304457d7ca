// file: models/setting.go
package models

import (
	"time"
)

// CNYStage 定义全局赛程阶段
type CNYStage string

const (
	StageBeforeCNY CNYStage = "before_cny"
	StageDuringCNY CNYStage = "during_cny"

	// SettingKeyCNYStage 阶段开关在设置表里的键名
	SettingKeyCNYStage = "cny_stage"
)

// IsValidStage 校验阶段取值
func IsValidStage(s CNYStage) bool {
	return s == StageBeforeCNY || s == StageDuringCNY
}

// AppSetting 对应 yaolin_app_setting 表，进程级键值配置
// 阶段开关只由管理员修改，每次排行榜查询都重新读取
type AppSetting struct {
	Key       string    `gorm:"primarykey;size:50" json:"key"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppSetting) TableName() string {
	return "yaolin_app_setting"
}
