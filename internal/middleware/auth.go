package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const tokenCachePrefix = "auth_token:"
const tokenCacheTTL = 15 * time.Minute

// AuthMiddleware 接受两种凭证：登录后签发的 "Bearer <jwt>" 会话令牌，
// 以及注册时签发的持久 "Token <key>" 令牌。持久令牌的查找经 Redis 缓存。
func AuthMiddleware(cfg *config.Config, userRepo *repository.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if key, ok := strings.CutPrefix(authHeader, "Token "); ok {
			claims, err := resolveTokenKey(c.Request.Context(), key, userRepo, rdb)
			if err != nil {
				util.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set("user", claims)
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

func resolveTokenKey(ctx context.Context, key string, userRepo *repository.UserRepository, rdb *redis.Client) (*util.Claims, error) {
	if rdb != nil {
		if cached, err := rdb.Get(ctx, tokenCachePrefix+key).Result(); err == nil {
			if userID, err := strconv.ParseUint(cached, 10, 64); err == nil {
				if user, err := userRepo.FindByID(uint(userID)); err == nil && user.IsActive {
					return &util.Claims{UserID: user.ID, Email: user.Email, IsStaff: user.IsStaff, IsAdmin: user.IsAdmin}, nil
				}
			}
		}
	}

	user, err := userRepo.FindByTokenKey(key)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, util.ErrForbidden
	}

	if rdb != nil {
		rdb.Set(ctx, tokenCachePrefix+key, strconv.FormatUint(uint64(user.ID), 10), tokenCacheTTL)
	}

	return &util.Claims{UserID: user.ID, Email: user.Email, IsStaff: user.IsStaff, IsAdmin: user.IsAdmin}, nil
}

// AdminRequired 角色守卫：要求调用者携带 is_admin 标志。
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !claims.IsAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
