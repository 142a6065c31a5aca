package service

import (
	"errors"
	"fmt"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Cfg: cfg}
}

type RegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=50"`
	MiddleName string `json:"middle_name" binding:"max=50"`
	LastName   string `json:"last_name" binding:"max=50"`
	Email      string `json:"email" binding:"required,email,max=100"`
	Contact    string `json:"contact" binding:"max=13"`
	Password   string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 创建用户并在同一事务内签发其唯一的持久认证令牌。
func (s *AuthService) Register(req RegisterRequest) (*model.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Contact:    req.Contact,
		Password:   string(hashedPassword),
		IsActive:   true,
	}
	token := &model.AuthToken{Key: util.GenerateTokenKey()}

	if err := s.UserRepo.Create(user, token); err != nil {
		return nil, "", err
	}

	return user, token.Key, nil
}

// Login 校验凭证后返回会话JWT。持久令牌在注册时签发，这里不重签。
func (s *AuthService) Login(req LoginRequest) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: account disabled", util.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.UserRepo.Update(user); err != nil {
		return nil, "", err
	}

	jwt, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return user, jwt, nil
}
