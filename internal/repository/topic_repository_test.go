package repository

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicCreateRequiresSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	err := repo.Create(&model.Topic{ID: "CSE001", Name: "Arrays", SubjectID: "CSE"})
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Zero(t, countRows(t, db, &model.Topic{}))
}

func TestTopicCreateDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	require.NoError(t, repo.Create(&model.Topic{ID: "CSE001", Name: "Arrays", SubjectID: "CSE"}))

	err := repo.Create(&model.Topic{ID: "CSE001", Name: "Pointers", SubjectID: "CSE"})
	assert.ErrorIs(t, err, util.ErrDuplicateKey)
}

func TestTopicNameUniquePerSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedSubject(t, db, "MAT", "Mathematics")
	require.NoError(t, repo.Create(&model.Topic{ID: "CSE001", Name: "Introduction", SubjectID: "CSE"}))

	// 同一学科下重名拒绝
	err := repo.Create(&model.Topic{ID: "CSE002", Name: "Introduction", SubjectID: "CSE"})
	assert.ErrorIs(t, err, util.ErrDuplicateKey)

	// 不同学科下的同名主题允许
	require.NoError(t, repo.Create(&model.Topic{ID: "MAT001", Name: "Introduction", SubjectID: "MAT"}))
}

func TestTopicListScopedToSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedSubject(t, db, "MAT", "Mathematics")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	seedTopic(t, db, "CSE002", "Pointers", "CSE")
	seedTopic(t, db, "MAT001", "Algebra", "MAT")

	topics, total, err := repo.ListBySubject("CSE", "", defaultPage())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, topics, 2)
	assert.Equal(t, "CSE001", topics[0].ID)
	assert.Equal(t, "CSE002", topics[1].ID)
}

func TestTopicListUnknownSubjectIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	topics, total, err := repo.ListBySubject("NOP", "", defaultPage())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, topics)
}

func TestTopicListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	seedTopic(t, db, "CSE002", "Pointers", "CSE")
	seedTopic(t, db, "CSE003", "Recursion", "CSE")

	topics, total, err := repo.ListBySubject("CSE", "", pagination.Params{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, topics, 1)
	assert.Equal(t, "CSE003", topics[0].ID)
}

func TestTopicUpdateReparentValidatesSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	topic := seedTopic(t, db, "CSE001", "Arrays", "CSE")

	topic.SubjectID = "NOP"
	assert.ErrorIs(t, repo.Update(topic), util.ErrNotFound)
}

func TestTopicUpdateRejectsNameCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	topic := seedTopic(t, db, "CSE002", "Pointers", "CSE")

	topic.Name = "Arrays"
	assert.ErrorIs(t, repo.Update(topic), util.ErrDuplicateKey)

	// 保持自身名称的更新不应被自己挡住
	topic.Name = "Pointers"
	require.NoError(t, repo.Update(topic))
}

func TestTopicDeleteCascadesToQuestions(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	seedTopic(t, db, "CSE002", "Pointers", "CSE")
	q1 := seedQuestion(t, db, "CSE001", "What is an array?")
	seedOption(t, db, q1.ID, "A contiguous block", true)
	q2 := seedQuestion(t, db, "CSE002", "What is a pointer?")
	seedOption(t, db, q2.ID, "An address", true)

	snapshot, err := repo.Delete("CSE001")
	require.NoError(t, err)
	assert.Equal(t, "CSE001", snapshot.ID)
	require.NotNil(t, snapshot.Subject)
	assert.Equal(t, "Computer Science", snapshot.Subject.Name)

	assert.Equal(t, int64(1), countRows(t, db, &model.Topic{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.Question{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.QuestionOption{}))
}
