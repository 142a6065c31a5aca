package repository

import (
	"errors"
	"fmt"
	"strings"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create 用户和其唯一认证令牌在同一事务内创建——令牌签发是用户创建
// 操作的显式步骤，不靠任何隐式钩子。
func (r *UserRepository) Create(user *model.User, token *model.AuthToken) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: email already exists", util.ErrDuplicateKey)
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		token.UserID = user.ID
		return tx.Create(token).Error
	})
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", util.ErrNotFound, id)
	}
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %q", util.ErrNotFound, email)
	}
	return &user, err
}

func (r *UserRepository) FindByTokenKey(key string) (*model.User, error) {
	var token model.AuthToken
	err := r.DB.First(&token, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: token", util.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(token.UserID)
}

func (r *UserRepository) FindTokenByUserID(userID uint) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.DB.First(&token, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: token for user %d", util.ErrNotFound, userID)
	}
	return &token, err
}

func (r *UserRepository) List(search string, p pagination.Params) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(email) LIKE ?", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Scopes(p.Scope()).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete 连同认证令牌一起删除，返回删除前的快照。
func (r *UserRepository) Delete(id uint) (*model.User, error) {
	var user model.User

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", util.ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}
