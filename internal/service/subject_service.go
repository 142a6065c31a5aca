package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/repository"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

type CreateSubjectRequest struct {
	ID   string `json:"_id" binding:"required,max=3"`
	Name string `json:"name" binding:"required,max=50"`
}

type UpdateSubjectRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// SubjectResponse 学科回显，内嵌主题列表（主题的 subject 字段回显学科名）。
type SubjectResponse struct {
	ID     string          `json:"_id"`
	Name   string          `json:"name"`
	Topics []TopicResponse `json:"topics"`
}

func newSubjectResponse(subject *model.Subject) SubjectResponse {
	topics := make([]TopicResponse, 0, len(subject.Topics))
	for _, t := range subject.Topics {
		topics = append(topics, TopicResponse{ID: t.ID, Name: t.Name, Subject: subject.Name})
	}
	return SubjectResponse{ID: subject.ID, Name: subject.Name, Topics: topics}
}

func (s *SubjectService) List(search string, p pagination.Params) ([]SubjectResponse, pagination.Meta, error) {
	subjects, total, err := s.SubjectRepo.List(search, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resp := make([]SubjectResponse, 0, len(subjects))
	for i := range subjects {
		resp = append(resp, newSubjectResponse(&subjects[i]))
	}
	return resp, pagination.NewMeta(p, total), nil
}

func (s *SubjectService) Create(req CreateSubjectRequest) (*SubjectResponse, error) {
	subject := &model.Subject{ID: req.ID, Name: req.Name}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	resp := newSubjectResponse(subject)
	return &resp, nil
}

func (s *SubjectService) Update(id string, req UpdateSubjectRequest) (*SubjectResponse, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	resp := newSubjectResponse(subject)
	return &resp, nil
}

func (s *SubjectService) Delete(id string) (*SubjectResponse, error) {
	subject, err := s.SubjectRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	resp := newSubjectResponse(subject)
	return &resp, nil
}
