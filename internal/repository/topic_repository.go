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

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

// Create (name, subject) 的唯一性检查和插入在同一事务内完成，
// 并发的相同请求不会产生重复主题。
func (r *TopicRepository) Create(topic *model.Topic) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Subject{}).Where("id = ?", topic.SubjectID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: subject %q", util.ErrNotFound, topic.SubjectID)
		}

		if err := tx.Model(&model.Topic{}).Where("id = ?", topic.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: topic %q already exists", util.ErrDuplicateKey, topic.ID)
		}

		if err := tx.Model(&model.Topic{}).
			Where("name = ? AND subject_id = ?", topic.Name, topic.SubjectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: topic %q already exists under subject %q", util.ErrDuplicateKey, topic.Name, topic.SubjectID)
		}

		return tx.Create(topic).Error
	})
}

func (r *TopicRepository) FindByID(id string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.Preload("Subject").First(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: topic %q", util.ErrNotFound, id)
	}
	return &topic, err
}

// ListBySubject 按编码升序返回学科下的一页主题；学科没有主题时
// 返回空集合而不是错误。
func (r *TopicRepository) ListBySubject(subjectID, search string, p pagination.Params) ([]model.Topic, int64, error) {
	var topics []model.Topic
	var total int64

	query := r.DB.Model(&model.Topic{}).Where("subject_id = ?", subjectID)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(id) LIKE ? AND LOWER(name) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Scopes(p.Scope()).Preload("Subject").Find(&topics).Error
	return topics, total, err
}

// Update 名称或所属学科变更时重新校验 (name, subject) 唯一性。
func (r *TopicRepository) Update(topic *model.Topic) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Subject{}).Where("id = ?", topic.SubjectID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: subject %q", util.ErrNotFound, topic.SubjectID)
		}

		if err := tx.Model(&model.Topic{}).
			Where("name = ? AND subject_id = ? AND id <> ?", topic.Name, topic.SubjectID, topic.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: topic %q already exists under subject %q", util.ErrDuplicateKey, topic.Name, topic.SubjectID)
		}

		return tx.Model(topic).Updates(map[string]interface{}{
			"name":       topic.Name,
			"subject_id": topic.SubjectID,
		}).Error
	})
}

// Delete 级联删除主题下的题目及选项，返回删除前的快照。
func (r *TopicRepository) Delete(id string) (*model.Topic, error) {
	var topic model.Topic

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Subject").First(&topic, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: topic %q", util.ErrNotFound, id)
			}
			return err
		}

		if err := deleteQuestionsByTopicIDs(tx, []string{id}); err != nil {
			return err
		}

		return tx.Delete(&model.Topic{}, "id = ?", id).Error
	})

	if err != nil {
		return nil, err
	}
	return &topic, nil
}
