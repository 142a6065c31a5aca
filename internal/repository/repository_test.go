package repository

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 为每个测试建立独立的内存数据库。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Subject{},
		&model.Topic{},
		&model.Image{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Examination{},
	))

	return db
}

func defaultPage() pagination.Params {
	return pagination.Params{Limit: pagination.DefaultLimit, Offset: 0}
}

func seedSubject(t *testing.T, db *gorm.DB, id, name string) *model.Subject {
	t.Helper()
	subject := &model.Subject{ID: id, Name: name}
	require.NoError(t, db.Create(subject).Error)
	return subject
}

func seedTopic(t *testing.T, db *gorm.DB, id, name, subjectID string) *model.Topic {
	t.Helper()
	topic := &model.Topic{ID: id, Name: name, SubjectID: subjectID}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func seedImage(t *testing.T, db *gorm.DB, name string) *model.Image {
	t.Helper()
	image := &model.Image{
		UUIDBase: model.UUIDBase{ID: model.GenerateUUID()},
		Name:     name,
		Folder:   "question",
		URL:      "http://localhost:8080/uploads/image/question/" + name,
	}
	require.NoError(t, db.Create(image).Error)
	return image
}

func seedQuestion(t *testing.T, db *gorm.DB, topicID, description string) *model.Question {
	t.Helper()
	question := &model.Question{
		Description:     description,
		TopicID:         &topicID,
		DifficultyLevel: model.Normal,
		MarksAllotted:   4,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func seedOption(t *testing.T, db *gorm.DB, questionID uint, description string, correct bool) *model.QuestionOption {
	t.Helper()
	option := &model.QuestionOption{
		ForQuestionID: questionID,
		Description:   description,
		IsCorrect:     correct,
	}
	require.NoError(t, db.Create(option).Error)
	return option
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}
