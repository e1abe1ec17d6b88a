package api

import (
	"net/http"

	"categorizer/config"
	"categorizer/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 管理员认证，凭据来自配置而非用户表
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login 管理员登录
// @Summary 管理员登录
// @Description 校验配置中的管理员凭据并签发 JWT，auth.enabled 为 false 时登录不可用
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录凭据"
// @Success 200 {object} LoginResponse "登录成功，返回 token"
// @Failure 400 {object} Response "参数错误或认证未启用"
// @Failure 401 {object} Response "用户名或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.cfg.Auth.Enabled {
		BadRequest(c, "管理认证未启用")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if req.Username != h.cfg.Auth.Username {
		Unauthorized(c, "用户名或密码错误")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Auth.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(1, req.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 token 失败"))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Username: req.Username})
}
