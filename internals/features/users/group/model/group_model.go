package model

type GroupModel struct {
	GroupID   int64  `gorm:"column:group_id;primaryKey;autoIncrement" json:"group_id"`
	GroupName string `gorm:"column:group_name;size:150;uniqueIndex;not null" json:"group_name"`

	Description *GroupDescriptionModel `gorm:"foreignKey:GroupID;references:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"description,omitempty"`
	Permissions []PermissionModel      `gorm:"many2many:group_permissions;joinForeignKey:group_id;joinReferences:permission_id" json:"permissions,omitempty"`
}

func (GroupModel) TableName() string {
	return "groups"
}

type GroupDescriptionModel struct {
	GroupDescriptionID int64  `gorm:"column:group_description_id;primaryKey;autoIncrement" json:"group_description_id"`
	GroupID            int64  `gorm:"column:group_id;uniqueIndex;not null" json:"group_id"`
	GroupDescription   string `gorm:"column:group_description;type:text" json:"group_description"`
}

func (GroupDescriptionModel) TableName() string {
	return "group_descriptions"
}

type PermissionModel struct {
	PermissionID          int64  `gorm:"column:permission_id;primaryKey;autoIncrement" json:"permission_id"`
	PermissionName        string `gorm:"column:permission_name;size:255;not null" json:"permission_name"`
	PermissionCodename    string `gorm:"column:permission_codename;size:100;not null" json:"permission_codename"`
	PermissionContentType string `gorm:"column:permission_content_type;size:100;not null" json:"permission_content_type"`
}

func (PermissionModel) TableName() string {
	return "permissions"
}

type GroupPermissionModel struct {
	GroupID      int64 `gorm:"column:group_id;primaryKey" json:"group_id"`
	PermissionID int64 `gorm:"column:permission_id;primaryKey" json:"permission_id"`

	Group      *GroupModel      `gorm:"foreignKey:GroupID;references:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Permission *PermissionModel `gorm:"foreignKey:PermissionID;references:PermissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (GroupPermissionModel) TableName() string {
	return "group_permissions"
}
