package api

import (
	"net/http"

	"categorizer/database"
	"categorizer/models"
	"categorizer/service"

	"github.com/gin-gonic/gin"
)

// CategorizerHandler 类别/子类别管理
type CategorizerHandler struct {
	svc *service.CategorizerService
}

// NewCategorizerHandler 创建分类处理器
func NewCategorizerHandler() *CategorizerHandler {
	return &CategorizerHandler{svc: service.NewCategorizerService(database.DB)}
}

// AddCategory 新增类别
// @Summary 新增类别
// @Description 新增一个类别，名称全局唯一，重复或为空时返回 304
// @Tags 分类管理
// @Produce json
// @Param cat query string true "类别名称"
// @Success 200 {object} models.Category "新增成功，返回类别实体"
// @Failure 304 {object} Response "名称为空或类别已存在"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/category [post]
func (h *CategorizerHandler) AddCategory(c *gin.Context) {
	category, err := h.svc.AddCategory(c.Query("cat"))
	if err != nil {
		if service.IsNotModified(err) {
			NotModified(c, "%s", err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "新增类别失败"))
		return
	}
	c.JSON(http.StatusOK, category)
}

// AddSubcategory 新增子类别
// @Summary 新增子类别
// @Description 在指定类别下新增子类别，类别不存在、名称为空或组合重复时返回 304
// @Tags 分类管理
// @Produce json
// @Param cat query string true "类别名称"
// @Param sub query string true "子类别名称"
// @Success 200 {object} models.Subcategory "新增成功，返回子类别实体"
// @Failure 304 {object} Response "参数无效、类别不存在或组合重复"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory [post]
func (h *CategorizerHandler) AddSubcategory(c *gin.Context) {
	subcategory, err := h.svc.AddSubcategory(c.Query("cat"), c.Query("sub"))
	if err != nil {
		if service.IsNotModified(err) {
			NotModified(c, "%s", err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "新增子类别失败"))
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

// AddSubcategories 批量新增子类别
// @Summary 批量新增子类别
// @Description 按输入顺序逐条新增，重复或无效的条目静默跳过，返回实际写入成功的组合列表（可能为空）
// @Tags 分类管理
// @Accept json
// @Produce json
// @Param list body []models.CategoryPair true "类别/子类别组合列表"
// @Success 200 {array} models.CategoryPair "写入成功的组合列表"
// @Failure 304 {object} Response "输入列表为空"
// @Failure 406 {object} Response "请求体格式错误"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory/bulk [post]
func (h *CategorizerHandler) AddSubcategories(c *gin.Context) {
	var pairs []models.CategoryPair
	if err := c.ShouldBindJSON(&pairs); err != nil {
		NotAcceptable(c, "请求体格式错误: %s", err.Error())
		return
	}
	added, err := h.svc.AddSubcategories(pairs)
	if err != nil {
		if service.IsNotModified(err) {
			NotModified(c, "%s", err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "批量新增子类别失败"))
		return
	}
	c.JSON(http.StatusOK, added)
}

// FindAllCategoryNames 查询全部类别名称
// @Summary 查询全部类别名称
// @Tags 分类查询
// @Produce json
// @Success 200 {array} string "类别名称列表"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/category [get]
func (h *CategorizerHandler) FindAllCategoryNames(c *gin.Context) {
	names, err := h.svc.FindAllCategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别名称失败"))
		return
	}
	c.JSON(http.StatusOK, names)
}

// FindAllCategories 查询全部类别实体
// @Summary 查询全部类别实体，子类别一并返回
// @Tags 分类查询
// @Produce json
// @Success 200 {array} models.Category "类别实体列表"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/category/object [get]
func (h *CategorizerHandler) FindAllCategories(c *gin.Context) {
	categories, err := h.svc.FindAllCategories()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// FindAllSubcategories 查询全部子类别实体
// @Summary 查询全部子类别实体
// @Tags 分类查询
// @Produce json
// @Success 200 {array} models.Subcategory "子类别实体列表"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory/object [get]
func (h *CategorizerHandler) FindAllSubcategories(c *gin.Context) {
	subcategories, err := h.svc.FindAllSubcategories()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询子类别失败"))
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

// FindAllCategorySubcategoryNames 查询全部组合
// @Summary 查询全部 (类别, 子类别) 名称组合
// @Tags 分类查询
// @Produce json
// @Success 200 {array} models.CategoryPair "名称组合列表"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory [get]
func (h *CategorizerHandler) FindAllCategorySubcategoryNames(c *gin.Context) {
	pairs, err := h.svc.FindAllCategorySubcategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询组合失败"))
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// DeleteCategory 删除类别
// @Summary 按名称删除类别，级联删除其全部子类别
// @Tags 分类管理
// @Produce json
// @Param cat path string true "类别名称"
// @Success 204 "删除成功"
// @Failure 304 {object} Response "类别不存在"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/category/{cat} [delete]
func (h *CategorizerHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Param("cat")); err != nil {
		if service.IsNotModified(err) {
			NotModified(c, "%s", err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除类别失败"))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSubcategory 删除单个子类别
// @Summary 按 (类别, 子类别) 组合删除单个子类别
// @Tags 分类管理
// @Produce json
// @Param cat path string true "类别名称"
// @Param sub path string true "子类别名称"
// @Success 204 "删除成功"
// @Failure 304 {object} Response "参数为空或组合不存在"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory/{cat}/{sub} [delete]
func (h *CategorizerHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.svc.DeleteSubcategory(c.Param("cat"), c.Param("sub")); err != nil {
		if service.IsNotModified(err) {
			NotModified(c, "%s", err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除子类别失败"))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllSubcategories 清空子类别
// @Summary 删除全部子类别，类别保持不变
// @Tags 分类管理
// @Produce json
// @Success 204 "删除成功"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/subcategory [delete]
func (h *CategorizerHandler) DeleteAllSubcategories(c *gin.Context) {
	if err := h.svc.DeleteAllSubcategories(); err != nil {
		InternalError(c, SafeErrorMessage(err, "清空子类别失败"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Dump 系统快照
// @Summary 返回系统快照
// @Description 返回两行：第一行为全部 (类别, 子类别) 组合，第二行为各类别的子类别数量（按数量降序、同数量按类别名升序）
// @Tags 分类查询
// @Produce json
// @Success 200 {array} interface{} "两元素快照"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/dump [get]
func (h *CategorizerHandler) Dump(c *gin.Context) {
	snapshot, err := h.svc.Dump()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成快照失败"))
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
