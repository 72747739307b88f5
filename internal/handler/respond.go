package handler

import (
	"errors"
	"net/http"

	"Connect_Life/internal/middleware"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"

	"github.com/gin-gonic/gin"
)

// fail 把业务错误映射成 HTTP 状态码；未分类的错误一律 500 并隐藏细节
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation),
		errors.Is(err, pkg.ErrUploadTooLarge),
		errors.Is(err, pkg.ErrUploadNotImage):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
	}
}

// identity 中间件没注入身份说明路由配置错了
func identity(c *gin.Context) (policy.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
	}
	return id, ok
}
