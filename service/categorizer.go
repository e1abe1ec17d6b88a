package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"categorizer/models"
	"categorizer/repository"

	"gorm.io/gorm"
)

// NotModifiedError 业务规则拒绝（空参数、重复、不存在），属于预期结果而非异常
// 边界层将其映射为 304 Not Modified
type NotModifiedError struct {
	Message string
}

func (e *NotModifiedError) Error() string {
	return e.Message
}

// notModified 构造业务拒绝结果
func notModified(format string, args ...interface{}) *NotModifiedError {
	return &NotModifiedError{Message: fmt.Sprintf(format, args...)}
}

// IsNotModified 判断错误是否为业务拒绝
func IsNotModified(err error) bool {
	var nm *NotModifiedError
	return errors.As(err, &nm)
}

// CategorizerService 类别/子类别编排核心
// 负责校验输入、维护唯一性语义并协调查询层
type CategorizerService struct {
	db *gorm.DB
}

// NewCategorizerService 创建分类服务
func NewCategorizerService(db *gorm.DB) *CategorizerService {
	return &CategorizerService{db: db}
}

// AddCategory 新增类别，名称为空或已存在时返回 NotModifiedError
func (s *CategorizerService) AddCategory(name string) (*models.Category, error) {
	if name == "" {
		return nil, notModified("类别名称为空")
	}
	count, err := repository.CountCategoriesByName(s.db, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, notModified("类别 %s 已存在，忽略本次新增", name)
	}
	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		// 并发写入时以唯一索引为准
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, notModified("类别 %s 已存在，忽略本次新增", name)
		}
		return nil, err
	}
	return &category, nil
}

// AddSubcategory 在指定类别下新增子类别
// 子类别名为空、类别不存在或组合重复时返回 NotModifiedError
func (s *CategorizerService) AddSubcategory(categoryName, subcategoryName string) (*models.Subcategory, error) {
	if subcategoryName == "" {
		return nil, notModified("子类别名称为空")
	}
	category, err := repository.FindCategoryByName(s.db, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notModified("类别 %s 不存在", categoryName)
	}
	existing, err := repository.FindSubcategoryByNameAndCategory(s.db, categoryName, subcategoryName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, notModified("类别|子类别组合 %s|%s 已存在，忽略本次新增", categoryName, subcategoryName)
	}
	subcategory := models.Subcategory{Name: subcategoryName, CategoryID: category.ID, Category: category}
	// Omit 避免 gorm 级联写入父类别关联
	if err := s.db.Omit("Category").Create(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, notModified("类别|子类别组合 %s|%s 已存在，忽略本次新增", categoryName, subcategoryName)
		}
		return nil, err
	}
	return &subcategory, nil
}

// AddSubcategories 批量新增子类别，按输入顺序逐条写入，各条独立提交，无跨条原子性
// 被拒绝的条目静默跳过，返回实际写入成功的组合列表；部分成功是正常结果
func (s *CategorizerService) AddSubcategories(pairs []models.CategoryPair) ([]models.CategoryPair, error) {
	if len(pairs) == 0 {
		return nil, notModified("类别|子类别列表为空，忽略本次新增")
	}
	added := make([]models.CategoryPair, 0, len(pairs))
	for _, pair := range pairs {
		subcategory, err := s.AddSubcategory(pair.Category, pair.Subcategory)
		if err != nil {
			if IsNotModified(err) {
				log.Printf("警告: %v", err)
				continue
			}
			return nil, err
		}
		added = append(added, models.CategoryPair{
			Category:    subcategory.Category.Name,
			Subcategory: subcategory.Name,
		})
	}
	return added, nil
}

// FindAllCategoryNames 查询全部类别名称
func (s *CategorizerService) FindAllCategoryNames() ([]string, error) {
	return repository.ListCategoryNames(s.db)
}

// FindAllCategories 查询全部类别，子类别一并返回
func (s *CategorizerService) FindAllCategories() ([]models.Category, error) {
	return repository.ListCategoriesWithChildren(s.db)
}

// FindAllSubcategories 查询全部子类别
func (s *CategorizerService) FindAllSubcategories() ([]models.Subcategory, error) {
	return repository.ListSubcategories(s.db)
}

// FindAllCategorySubcategoryNames 查询全部 (类别, 子类别) 名称组合
func (s *CategorizerService) FindAllCategorySubcategoryNames() ([]models.CategoryPair, error) {
	return repository.ListCategorySubcategoryNames(s.db)
}

// DeleteCategory 按名称删除类别并级联删除其子类别，不存在时返回 NotModifiedError
func (s *CategorizerService) DeleteCategory(name string) error {
	category, err := repository.FindCategoryByName(s.db, name)
	if err != nil {
		return err
	}
	if category == nil {
		return notModified("类别 %s 不存在", name)
	}
	return s.db.Delete(category).Error
}

// DeleteSubcategory 按组合删除单个子类别，参数为空或组合不存在时返回 NotModifiedError
func (s *CategorizerService) DeleteSubcategory(categoryName, subcategoryName string) error {
	if categoryName == "" || subcategoryName == "" {
		return notModified("类别或子类别名称为空")
	}
	subcategory, err := repository.FindSubcategoryByNameAndCategory(s.db, categoryName, subcategoryName)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return notModified("类别|子类别组合 %s|%s 不存在", categoryName, subcategoryName)
	}
	return s.db.Delete(subcategory).Error
}

// DeleteAllSubcategories 删除全部子类别，类别保持不变
func (s *CategorizerService) DeleteAllSubcategories() error {
	return repository.DeleteAllSubcategories(s.db)
}

// FindCategoryCounts 查询各类别的子类别数量，按数量降序、同数量按类别名升序
func (s *CategorizerService) FindCategoryCounts() ([]models.CategoryCount, error) {
	return repository.ListCategoryCounts(s.db)
}

// Dump 返回系统快照：第一行为全部 (类别, 子类别) 组合，
// 第二行为各类别的子类别数量，按数量降序、同数量按类别名升序
// 空数据集返回两个空列表而非 null
func (s *CategorizerService) Dump() ([]interface{}, error) {
	pairs, err := repository.ListCategorySubcategoryNames(s.db)
	if err != nil {
		return nil, err
	}
	counts, err := s.FindCategoryCounts()
	if err != nil {
		return nil, err
	}
	return []interface{}{pairs, counts}, nil
}

// ParseDefaultCategories 解析逗号分隔的默认类别列表，去除首尾空白并丢弃空项
func ParseDefaultCategories(raw string) []string {
	names := make([]string, 0)
	for _, token := range strings.Split(raw, ",") {
		name := strings.TrimSpace(token)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Initialize 按配置并发初始化默认类别
// 重复项会被幂等拒绝并忽略，最终状态与写入顺序无关
func (s *CategorizerService) Initialize(defaultCategories string) {
	names := ParseDefaultCategories(defaultCategories)
	if len(names) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := s.AddCategory(name); err != nil && !IsNotModified(err) {
				log.Printf("警告: 初始化默认类别 %s 失败: %v", name, err)
			}
		}(name)
	}
	wg.Wait()
	log.Printf("默认类别初始化完成: %s", strings.Join(names, ", "))
}
