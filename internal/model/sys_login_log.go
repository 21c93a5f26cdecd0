package model

import "time"

// 登录结果
const (
	LoginStatusFail    = 0
	LoginStatusSuccess = 1
)

// SysLoginLog 登录日志
type SysLoginLog struct {
	BaseModel
	Username  string    `gorm:"size:100;index" json:"username"`
	IP        string    `gorm:"size:64" json:"ip"`
	Region    string    `gorm:"size:128" json:"region"` // IP 归属地，异步解析
	Status    int       `gorm:"default:0;index" json:"status"`
	Message   string    `gorm:"size:255" json:"message"`
	LoginTime time.Time `json:"loginTime"`
}

func (SysLoginLog) TableName() string {
	return "sys_login_log"
}
