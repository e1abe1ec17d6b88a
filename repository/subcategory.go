package repository

import (
	"errors"

	"categorizer/models"

	"gorm.io/gorm"
)

// 子类别查询层

// FindSubcategoryByNameAndCategory 按 (类别名, 子类别名) 组合精确查找，未找到返回 nil
func FindSubcategoryByNameAndCategory(db *gorm.DB, categoryName, subcategoryName string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := db.Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.name = ? AND subcategories.name = ?", categoryName, subcategoryName).
		First(&subcategory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

// ListSubcategories 列出全部子类别
func ListSubcategories(db *gorm.DB) ([]models.Subcategory, error) {
	subcategories := make([]models.Subcategory, 0)
	err := db.Find(&subcategories).Error
	return subcategories, err
}

// ListCategorySubcategoryNames 列出全部 (类别名, 子类别名) 组合的扁平投影
func ListCategorySubcategoryNames(db *gorm.DB) ([]models.CategoryPair, error) {
	pairs := make([]models.CategoryPair, 0)
	err := db.Model(&models.Subcategory{}).
		Select("categories.name AS category, subcategories.name AS subcategory").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Scan(&pairs).Error
	return pairs, err
}

// DeleteAllSubcategories 删除全部子类别，类别保持不变
func DeleteAllSubcategories(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&models.Subcategory{}).Error
}
