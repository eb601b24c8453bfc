package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenExpireMinutes = 30

// AuthService 认证服务
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// HashPassword 使用 bcrypt 加密密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword 校验密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims JWT 声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// TokenTTL 访问令牌有效期
func (s *AuthService) TokenTTL() time.Duration {
	minutes := s.cfg.JWT.ExpireMinutes
	if minutes <= 0 {
		minutes = defaultTokenExpireMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.TokenTTL())

	claims := JWTClaims{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func ParseJWT(secretKey, tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("无效的 token")
}

// ParseJWT 使用当前密钥解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	return ParseJWT(s.cfg.JWT.SecretKey, tokenString)
}

// LoginResult 登录结果
type LoginResult struct {
	Admin     *models.Admin
	Token     string
	ExpiresAt time.Time
}

// Login 管理员登录
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrAdminDisabled
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.adminRepo.TouchLastLogin(admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastLoginAt = &now
	if err := cache.SetAdminAuthState(ctx, cache.BuildAdminAuthState(admin)); err != nil {
		logger.Warnw("admin_auth_state_cache_set_failed", "admin_id", admin.ID, "error", err)
	}
	logger.Infow("admin_login", "admin_id", admin.ID, "username", admin.Username)

	return &LoginResult{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}

// Me 获取当前登录管理员
func (s *AuthService) Me(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// ChangePassword 修改管理员密码，成功后旧令牌全部失效
func (s *AuthService) ChangePassword(ctx context.Context, adminID uint, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	if err := VerifyPassword(admin.PasswordHash, oldPassword); err != nil {
		return ErrInvalidPassword
	}

	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	admin.PasswordHash = hashedPassword
	revokeTokens(admin)
	if err := s.adminRepo.Update(admin); err != nil {
		return err
	}
	s.syncAuthState(ctx, admin)
	return nil
}

// Logout 注销当前管理员的全部令牌
func (s *AuthService) Logout(ctx context.Context, adminID uint) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	revokeTokens(admin)
	if err := s.adminRepo.Update(admin); err != nil {
		return err
	}
	s.syncAuthState(ctx, admin)
	return nil
}

func (s *AuthService) syncAuthState(ctx context.Context, admin *models.Admin) {
	if err := cache.SetAdminAuthState(ctx, cache.BuildAdminAuthState(admin)); err != nil {
		logger.Warnw("admin_auth_state_cache_set_failed", "admin_id", admin.ID, "error", err)
	}
}

// revokeTokens 递增令牌版本并记录失效时间
func revokeTokens(admin *models.Admin) {
	now := time.Now()
	admin.TokenVersion++
	admin.TokenInvalidBefore = &now
}
