package model

// 菜单节点类型
const (
	MenuTypeDir    = 0 // 目录
	MenuTypeMenu   = 1 // 菜单
	MenuTypeButton = 2 // 按钮（纯权限点）
)

// SysMenu 菜单，同时充当权限节点（perms 为权限标识串）
type SysMenu struct {
	BaseModel
	ParentID  int64  `gorm:"default:0;index" json:"parentId"` // 0 表示顶级
	Name      string `gorm:"size:50;not null" json:"name"`
	Router    string `gorm:"size:100" json:"router"`
	Perms     string `gorm:"size:255" json:"perms"` // 如 sys:user:add，逗号分隔多个
	Type      int    `gorm:"default:0" json:"type"`
	Icon      string `gorm:"size:50" json:"icon"`
	OrderNum  int    `gorm:"default:0" json:"orderNum"`
	ViewPath  string `gorm:"size:255" json:"viewPath"` // 前端组件路径
	KeepAlive bool   `gorm:"default:true" json:"keepalive"`
	IsShow    bool   `gorm:"default:true" json:"isShow"`

	// 树形展示用，不落库
	Children []*SysMenu `gorm:"-" json:"children,omitempty"`
}

func (SysMenu) TableName() string {
	return "sys_menu"
}
