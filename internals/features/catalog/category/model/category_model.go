package model

type CategoryModel struct {
	CategoryID       int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName     string `gorm:"column:category_name;size:255;uniqueIndex;not null" json:"category_name"`
	CategoryParentID *int64 `gorm:"column:category_parent_id;index" json:"category_parent_id,omitempty"`

	Parent *CategoryModel `gorm:"foreignKey:CategoryParentID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
