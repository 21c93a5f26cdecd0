package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 公共实体字段：自增主键 + 审计时间戳 + 软删除
type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"createTime"`
	UpdatedAt time.Time      `json:"updateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// --- 审计字段（由 GORM 回调自动填充） ---
	CreatedBy int64 `gorm:"comment:创建人ID" json:"createdBy"`
	UpdatedBy int64 `gorm:"comment:更新人ID" json:"updatedBy"`
}
