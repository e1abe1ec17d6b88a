package models

import (
	"time"
)

// Subcategory 子类别，归属且仅归属一个类别，创建后不可改名或换父
// (category_id, name) 组合唯一，同一类别下不允许重名
type Subcategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_category_subcategory"`
	CategoryID uint      `json:"-" gorm:"not null;uniqueIndex:idx_category_subcategory"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"` // 父类别引用，不对外序列化
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"` // 乐观并发令牌
}

func (Subcategory) TableName() string {
	return "subcategories"
}
