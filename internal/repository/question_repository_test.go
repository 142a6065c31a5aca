package repository

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestQuestionCreateWithOptions(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")

	question := &model.Question{
		Description:     "What is an array?",
		TopicID:         strptr("CSE001"),
		DifficultyLevel: model.Easy,
		MarksAllotted:   4,
		Options: []model.QuestionOption{
			{Description: "A contiguous block", IsCorrect: true},
			{Description: "A linked list"},
		},
	}
	require.NoError(t, repo.Create(question))
	require.NotZero(t, question.ID)

	stored, err := repo.FindByID(question.ID)
	require.NoError(t, err)
	require.Len(t, stored.Options, 2)
	assert.Equal(t, question.ID, stored.Options[0].ForQuestionID)
	assert.True(t, stored.Options[0].IsCorrect)
	assert.False(t, stored.Options[1].IsCorrect)
}

func TestQuestionCreateUnknownTopic(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	question := &model.Question{
		Description:     "Orphan question",
		TopicID:         strptr("NOP001"),
		DifficultyLevel: model.Normal,
	}
	assert.ErrorIs(t, repo.Create(question), util.ErrNotFound)
	assert.Zero(t, countRows(t, db, &model.Question{}))
}

func TestQuestionCreateRollsBackOnBadOptionAttachment(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")

	question := &model.Question{
		Description:     "What is shown in the figure?",
		TopicID:         strptr("CSE001"),
		DifficultyLevel: model.Hard,
		Options: []model.QuestionOption{
			{Description: "A stack", IsCorrect: true},
			{Description: "A queue", AttachmentID: strptr("00000000-0000-0000-0000-000000000000")},
		},
	}

	err := repo.Create(question)
	assert.ErrorIs(t, err, util.ErrNotFound)

	// 任一选项失败时题目与已写入的选项全部回滚
	assert.Zero(t, countRows(t, db, &model.Question{}))
	assert.Zero(t, countRows(t, db, &model.QuestionOption{}))
}

func TestQuestionCreateValidatesAttachment(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	image := seedImage(t, db, "diagram.png")

	question := &model.Question{
		Description:     "What is shown in the figure?",
		TopicID:         strptr("CSE001"),
		AttachmentID:    &image.ID,
		DifficultyLevel: model.Normal,
		Options: []model.QuestionOption{
			{Description: "A tree", IsCorrect: true},
		},
	}
	require.NoError(t, repo.Create(question))

	stored, err := repo.FindByID(question.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AttachmentID)
	assert.Equal(t, image.ID, *stored.AttachmentID)
}

func TestQuestionListSearchesDescription(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	seedQuestion(t, db, "CSE001", "What is an Array?")
	seedQuestion(t, db, "CSE001", "What is a pointer?")

	questions, total, err := repo.List("array", defaultPage())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is an Array?", questions[0].Description)
}

func TestQuestionListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	first := seedQuestion(t, db, "CSE001", "First question")
	seedQuestion(t, db, "CSE001", "Second question")
	third := seedQuestion(t, db, "CSE001", "Third question")

	questions, total, err := repo.List("", pagination.Params{Limit: 1, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, questions, 1)
	assert.Equal(t, first.ID, questions[0].ID)

	questions, _, err = repo.List("", pagination.Params{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, third.ID, questions[0].ID)
}

func TestQuestionDeleteRemovesOptions(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	seedSubject(t, db, "CSE", "Computer Science")
	seedTopic(t, db, "CSE001", "Arrays", "CSE")
	question := seedQuestion(t, db, "CSE001", "What is an array?")
	seedOption(t, db, question.ID, "A contiguous block", true)
	seedOption(t, db, question.ID, "A linked list", false)

	snapshot, err := repo.Delete(question.ID)
	require.NoError(t, err)
	assert.Len(t, snapshot.Options, 2)

	assert.Zero(t, countRows(t, db, &model.Question{}))
	assert.Zero(t, countRows(t, db, &model.QuestionOption{}))

	_, err = repo.Delete(question.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
