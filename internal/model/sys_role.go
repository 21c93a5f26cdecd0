package model

// SysRole 角色，菜单（权限节点）通过 role_menus 关联表授权
type SysRole struct {
	BaseModel
	Name   string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Label  string `gorm:"size:50" json:"label"` // 英文标识，如 admin / operator
	Remark string `gorm:"size:255" json:"remark"`

	Menus []SysMenu `gorm:"many2many:sys_role_menus;" json:"menus,omitempty"`
}

func (SysRole) TableName() string {
	return "sys_role"
}
