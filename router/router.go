package router

import (
	"time"

	"categorizer/api"
	"categorizer/config"
	_ "categorizer/docs"
	"categorizer/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录，带限流）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		categorizerHandler := api.NewCategorizerHandler()
		exportHandler := api.NewExportHandler()
		categorizer := v1.Group("/categorizer")
		{
			// 查询接口（无需登录）
			categorizer.GET("/category", categorizerHandler.FindAllCategoryNames)
			categorizer.GET("/category/object", categorizerHandler.FindAllCategories)
			categorizer.GET("/subcategory", categorizerHandler.FindAllCategorySubcategoryNames)
			categorizer.GET("/subcategory/object", categorizerHandler.FindAllSubcategories)
			categorizer.GET("/dump", categorizerHandler.Dump)

			// 导出接口
			categorizer.GET("/export/csv", exportHandler.ExportCSV)
			categorizer.GET("/export/json", exportHandler.ExportJSON)
			categorizer.GET("/export/excel", exportHandler.ExportExcel)

			// 写接口，开启管理认证时需要 JWT
			writes := categorizer.Group("")
			if cfg.Auth.Enabled {
				writes.Use(middleware.JWTAuth())
			}
			{
				writes.POST("/category", categorizerHandler.AddCategory)
				writes.POST("/subcategory", categorizerHandler.AddSubcategory)
				writes.POST("/subcategory/bulk", categorizerHandler.AddSubcategories)
				writes.DELETE("/category/:cat", categorizerHandler.DeleteCategory)
				writes.DELETE("/subcategory/:cat/:sub", categorizerHandler.DeleteSubcategory)
				writes.DELETE("/subcategory", categorizerHandler.DeleteAllSubcategories)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
