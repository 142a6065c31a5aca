package service

import (
	"fmt"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

type OptionRequest struct {
	Description string  `json:"description"`
	Attachment  *string `json:"attachment"`
	IsCorrect   bool    `json:"is_correct"`
}

type CreateQuestionRequest struct {
	Description     string          `json:"description"`
	Attachment      *string         `json:"attachment"`
	DifficultyLevel string          `json:"difficulty_level" binding:"required"`
	MarksAllotted   int             `json:"marks_allotted"`
	Options         []OptionRequest `json:"options"`
}

type OptionResponse struct {
	ID          uint    `json:"_id"`
	Description string  `json:"description"`
	Attachment  *string `json:"attachment"`
	IsCorrect   bool    `json:"is_correct"`
}

type QuestionResponse struct {
	ID              uint             `json:"_id"`
	Description     string           `json:"description"`
	Options         []OptionResponse `json:"options"`
	Attachment      *string          `json:"attachment"`
	Topic           *string          `json:"topic"`
	DifficultyLevel string           `json:"difficulty_level"`
	MarksAllotted   int              `json:"marks_allotted"`
}

func newQuestionResponse(q *model.Question) QuestionResponse {
	options := make([]OptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionResponse{
			ID:          o.ID,
			Description: o.Description,
			Attachment:  o.AttachmentID,
			IsCorrect:   o.IsCorrect,
		})
	}
	return QuestionResponse{
		ID:              q.ID,
		Description:     q.Description,
		Options:         options,
		Attachment:      q.AttachmentID,
		Topic:           q.TopicID,
		DifficultyLevel: string(q.DifficultyLevel),
		MarksAllotted:   q.MarksAllotted,
	}
}

// Create 在指定主题下创建题目及其全部选项，要么全部成功要么全部回滚。
func (s *QuestionService) Create(topicID string, req CreateQuestionRequest) (*QuestionResponse, error) {
	level := model.DifficultyLevel(req.DifficultyLevel)
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty level %q", util.ErrValidation, req.DifficultyLevel)
	}

	marks := req.MarksAllotted
	if marks == 0 {
		marks = 4
	}

	question := &model.Question{
		Description:     req.Description,
		AttachmentID:    req.Attachment,
		TopicID:         &topicID,
		DifficultyLevel: level,
		MarksAllotted:   marks,
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.QuestionOption{
			Description:  opt.Description,
			AttachmentID: opt.Attachment,
			IsCorrect:    opt.IsCorrect,
		})
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	resp := newQuestionResponse(question)
	return &resp, nil
}

func (s *QuestionService) List(search string, p pagination.Params) ([]QuestionResponse, pagination.Meta, error) {
	questions, total, err := s.QuestionRepo.List(search, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resp := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, newQuestionResponse(&questions[i]))
	}
	return resp, pagination.NewMeta(p, total), nil
}

func (s *QuestionService) Get(id uint) (*QuestionResponse, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := newQuestionResponse(question)
	return &resp, nil
}

func (s *QuestionService) Delete(id uint) (*QuestionResponse, error) {
	question, err := s.QuestionRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	resp := newQuestionResponse(question)
	return &resp, nil
}
