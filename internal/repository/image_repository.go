package repository

import (
	"errors"
	"fmt"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.DB.Create(image).Error
}

func (r *ImageRepository) FindByID(id string) (*model.Image, error) {
	var image model.Image
	err := r.DB.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: image %q", util.ErrNotFound, id)
	}
	return &image, err
}

// Delete 附件外键虽然可空但按 CASCADE 语义处理：删除图片时，
// 引用它的题目（连同选项）和选项一并删除，整体一个事务。
func (r *ImageRepository) Delete(id string) (*model.Image, error) {
	var image model.Image

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: image %q", util.ErrNotFound, id)
			}
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("attachment_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("for_question_id IN ?", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("attachment_id = ?", id).Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Image{}, "id = ?", id).Error
	})

	if err != nil {
		return nil, err
	}
	return &image, nil
}
