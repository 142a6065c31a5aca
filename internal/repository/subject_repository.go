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

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

// Create 学科编码由调用方提供，重复编码拒绝。
func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Subject{}).Where("id = ?", subject.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: subject %q already exists", util.ErrDuplicateKey, subject.ID)
		}
		return tx.Create(subject).Error
	})
}

func (r *SubjectRepository) FindByID(id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Preload("Topics").First(&subject, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: subject %q", util.ErrNotFound, id)
	}
	return &subject, err
}

// List 按编码升序返回一页学科。search 非空时对编码和名称同时做
// 大小写不敏感的子串过滤（两个条件取 AND）。
func (r *SubjectRepository) List(search string, p pagination.Params) ([]model.Subject, int64, error) {
	var subjects []model.Subject
	var total int64

	query := r.DB.Model(&model.Subject{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(id) LIKE ? AND LOWER(name) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Scopes(p.Scope()).Preload("Topics").Find(&subjects).Error
	return subjects, total, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Model(subject).Updates(map[string]interface{}{"name": subject.Name}).Error
}

// Delete 级联删除学科下的全部主题、这些主题下的题目及其选项，
// 整体在一个事务内执行，返回删除前的快照用于响应回显。
func (r *SubjectRepository) Delete(id string) (*model.Subject, error) {
	var subject model.Subject

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Topics").First(&subject, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: subject %q", util.ErrNotFound, id)
			}
			return err
		}

		var topicIDs []string
		if err := tx.Model(&model.Topic{}).Where("subject_id = ?", id).Pluck("id", &topicIDs).Error; err != nil {
			return err
		}

		if len(topicIDs) > 0 {
			if err := deleteQuestionsByTopicIDs(tx, topicIDs); err != nil {
				return err
			}
			if err := tx.Where("subject_id = ?", id).Delete(&model.Topic{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Subject{}, "id = ?", id).Error
	})

	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// deleteQuestionsByTopicIDs 删除指定主题下的所有题目及选项。
func deleteQuestionsByTopicIDs(tx *gorm.DB, topicIDs []string) error {
	var questionIDs []uint
	if err := tx.Model(&model.Question{}).Where("topic_id IN ?", topicIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) == 0 {
		return nil
	}

	if err := tx.Where("for_question_id IN ?", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error
}
