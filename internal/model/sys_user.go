package model

// 用户状态
const (
	UserStatusDisabled = 0
	UserStatusActive   = 1
)

// SysUser 系统用户
type SysUser struct {
	BaseModel
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希，永不落明文
	RealName string `gorm:"size:50" json:"realName"`
	NickName string `gorm:"size:50" json:"nickName"`
	HeadImg  string `gorm:"size:255" json:"headImg"`
	Remark   string `gorm:"size:255" json:"remark"`

	// 角色 ID 列表，逗号分隔字符串，沿用旧库约定
	RoleIDs string `gorm:"column:role_ids;size:255" json:"roleId"`

	Status int `gorm:"default:1" json:"status"`
}

func (SysUser) TableName() string {
	return "sys_user"
}
