package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/repository"
)

type TopicService struct {
	TopicRepo   *repository.TopicRepository
	SubjectRepo *repository.SubjectRepository
}

func NewTopicService(topicRepo *repository.TopicRepository, subjectRepo *repository.SubjectRepository) *TopicService {
	return &TopicService{TopicRepo: topicRepo, SubjectRepo: subjectRepo}
}

type CreateTopicRequest struct {
	ID   string `json:"_id" binding:"required,max=6"`
	Name string `json:"name" binding:"max=200"`
}

type UpdateTopicRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=200"`
	SubjectID *string `json:"subject_id" binding:"omitempty,max=3"`
}

// TopicResponse subject 字段回显所属学科的名称而不是编码。
type TopicResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

func newTopicResponse(topic *model.Topic) TopicResponse {
	resp := TopicResponse{ID: topic.ID, Name: topic.Name}
	if topic.Subject != nil {
		resp.Subject = topic.Subject.Name
	}
	return resp
}

func (s *TopicService) ListBySubject(subjectID, search string, p pagination.Params) ([]TopicResponse, pagination.Meta, error) {
	topics, total, err := s.TopicRepo.ListBySubject(subjectID, search, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resp := make([]TopicResponse, 0, len(topics))
	for i := range topics {
		resp = append(resp, newTopicResponse(&topics[i]))
	}
	return resp, pagination.NewMeta(p, total), nil
}

func (s *TopicService) Create(subjectID string, req CreateTopicRequest) (*TopicResponse, error) {
	topic := &model.Topic{ID: req.ID, Name: req.Name, SubjectID: subjectID}
	if topic.Name == "" {
		topic.Name = "Introduction"
	}

	if err := s.TopicRepo.Create(topic); err != nil {
		return nil, err
	}

	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	topic.Subject = subject

	resp := newTopicResponse(topic)
	return &resp, nil
}

func (s *TopicService) Update(id string, req UpdateTopicRequest) (*TopicResponse, error) {
	topic, err := s.TopicRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		topic.Name = *req.Name
	}
	if req.SubjectID != nil {
		topic.SubjectID = *req.SubjectID
		topic.Subject = nil
	}

	if err := s.TopicRepo.Update(topic); err != nil {
		return nil, err
	}

	if topic.Subject == nil {
		subject, err := s.SubjectRepo.FindByID(topic.SubjectID)
		if err != nil {
			return nil, err
		}
		topic.Subject = subject
	}

	resp := newTopicResponse(topic)
	return &resp, nil
}

func (s *TopicService) Delete(id string) (*TopicResponse, error) {
	topic, err := s.TopicRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	resp := newTopicResponse(topic)
	return &resp, nil
}
