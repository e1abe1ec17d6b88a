package repository

import (
	"errors"

	"categorizer/models"

	"gorm.io/gorm"
)

// 类别查询层，只做数据访问，不含业务判断

// FindCategoryByName 按名称精确查找类别，未找到返回 nil
func FindCategoryByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	if err := db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CountCategoriesByName 按名称统计类别数量，受唯一索引约束结果只会是 0 或 1
func CountCategoriesByName(db *gorm.DB, name string) (int64, error) {
	var count int64
	err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// ListCategoryNames 列出全部类别名称
func ListCategoryNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0)
	err := db.Model(&models.Category{}).Pluck("name", &names).Error
	return names, err
}

// ListCategoriesWithChildren 列出全部类别并预加载子类别
func ListCategoriesWithChildren(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := db.Preload("Subcategories").Find(&categories).Error
	return categories, err
}

// ListCategoryCounts 列出各类别的子类别数量，按数量降序，数量相同按类别名升序
func ListCategoryCounts(db *gorm.DB) ([]models.CategoryCount, error) {
	counts := make([]models.CategoryCount, 0)
	err := db.Model(&models.Category{}).
		Select("categories.name AS category, COUNT(subcategories.id) AS count").
		Joins("JOIN subcategories ON subcategories.category_id = categories.id").
		Group("categories.name").
		Order("count DESC, categories.name ASC").
		Scan(&counts).Error
	return counts, err
}
