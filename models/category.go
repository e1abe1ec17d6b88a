package models

import (
	"time"
)

// Category 类别，名称全局唯一且创建后不可修改
// 删除类别时级联删除其全部子类别
type Category struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"` // 乐观并发令牌
	Subcategories []Subcategory `json:"subcategories" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}
