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

type ExaminationRepository struct {
	DB *gorm.DB
}

func NewExaminationRepository(db *gorm.DB) *ExaminationRepository {
	return &ExaminationRepository{DB: db}
}

// Create 考试与其题目集合在一个事务内写入；引用了不存在的题目时整体失败。
func (r *ExaminationRepository) Create(exam *model.Examination, questionIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions, err := findQuestions(tx, questionIDs)
		if err != nil {
			return err
		}

		if err := tx.Omit("Questions").Create(exam).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Model(exam).Association("Questions").Append(questions)
	})
}

func (r *ExaminationRepository) FindByID(id uint) (*model.Examination, error) {
	var exam model.Examination
	err := r.DB.Preload("Questions.Options").First(&exam, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: examination %d", util.ErrNotFound, id)
	}
	return &exam, err
}

func (r *ExaminationRepository) List(search string, p pagination.Params) ([]model.Examination, int64, error) {
	var exams []model.Examination
	var total int64

	query := r.DB.Model(&model.Examination{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(exam_name) LIKE ?", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Scopes(p.Scope()).Find(&exams).Error
	return exams, total, err
}

// Update questionIDs 非 nil 时整体替换考试的题目集合。
func (r *ExaminationRepository) Update(exam *model.Examination, questionIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions").Save(exam).Error; err != nil {
			return err
		}
		if questionIDs == nil {
			return nil
		}

		questions, err := findQuestions(tx, questionIDs)
		if err != nil {
			return err
		}
		return tx.Model(exam).Association("Questions").Replace(questions)
	})
}

func (r *ExaminationRepository) Delete(id uint) (*model.Examination, error) {
	var exam model.Examination

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Questions").First(&exam, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: examination %d", util.ErrNotFound, id)
			}
			return err
		}

		// Clear 会清空 exam.Questions，先留住快照再解除关联
		questions := exam.Questions
		if err := tx.Model(&exam).Association("Questions").Clear(); err != nil {
			return err
		}
		exam.Questions = questions

		return tx.Delete(&model.Examination{}, id).Error
	})

	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func findQuestions(tx *gorm.DB, ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := tx.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) != len(ids) {
		return nil, fmt.Errorf("%w: one or more questions do not exist", util.ErrNotFound)
	}
	return questions, nil
}
