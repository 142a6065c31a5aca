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

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Create 题目和它的全部选项在一个事务里创建：任何一个选项失败，
// 整个题目回滚，不会留下部分创建的数据。
func (r *QuestionRepository) Create(question *model.Question) error {
	options := question.Options
	question.Options = nil

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if question.TopicID != nil {
			if err := ensureTopicExists(tx, *question.TopicID); err != nil {
				return err
			}
		}
		if question.AttachmentID != nil {
			if err := ensureImageExists(tx, *question.AttachmentID); err != nil {
				return err
			}
		}

		if err := tx.Create(question).Error; err != nil {
			return err
		}

		for i := range options {
			options[i].ForQuestionID = question.ID
			if options[i].AttachmentID != nil {
				if err := ensureImageExists(tx, *options[i].AttachmentID); err != nil {
					return err
				}
			}
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return err
	}
	question.Options = options
	return nil
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Options").First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: question %d", util.ErrNotFound, id)
	}
	return &question, err
}

// List 按ID升序返回一页题目。search 非空时对描述做大小写不敏感的子串过滤。
func (r *QuestionRepository) List(search string, p pagination.Params) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(description) LIKE ?", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Scopes(p.Scope()).Preload("Options").Find(&questions).Error
	return questions, total, err
}

// Delete 连同选项一起删除，返回删除前的快照。
func (r *QuestionRepository) Delete(id uint) (*model.Question, error) {
	var question model.Question

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Options").First(&question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", util.ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("for_question_id = ?", id).Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})

	if err != nil {
		return nil, err
	}
	return &question, nil
}

func ensureTopicExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&model.Topic{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: topic %q", util.ErrNotFound, id)
	}
	return nil
}

func ensureImageExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&model.Image{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: image %q", util.ErrNotFound, id)
	}
	return nil
}
