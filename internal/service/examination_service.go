package service

import (
	"fmt"
	"time"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
)

type ExaminationService struct {
	ExamRepo *repository.ExaminationRepository
}

func NewExaminationService(examRepo *repository.ExaminationRepository) *ExaminationService {
	return &ExaminationService{ExamRepo: examRepo}
}

type ExaminationRequest struct {
	ExamName        string `json:"exam_name" binding:"required,max=255"`
	ExamDate        string `json:"exam_date"`
	DifficultyLevel string `json:"difficulty_level"`
	FullMarks       int    `json:"full_marks"`
	MaxTime         int    `json:"max_time"`
	ExamType        string `json:"exam_type"`
	Questions       []uint `json:"questions"`
}

func (s *ExaminationService) buildExam(exam *model.Examination, req ExaminationRequest) error {
	exam.ExamName = req.ExamName
	exam.FullMarks = req.FullMarks
	exam.MaxTime = req.MaxTime

	if req.ExamDate != "" {
		date, err := time.Parse(util.DateFormat, req.ExamDate)
		if err != nil {
			return fmt.Errorf("%w: exam_date must be formatted as %s", util.ErrValidation, util.DateFormat)
		}
		exam.ExamDate = &date
	}

	exam.DifficultyLevel = model.Normal
	if req.DifficultyLevel != "" {
		level := model.DifficultyLevel(req.DifficultyLevel)
		if !level.Valid() {
			return fmt.Errorf("%w: unknown difficulty level %q", util.ErrValidation, req.DifficultyLevel)
		}
		exam.DifficultyLevel = level
	}

	exam.ExamType = model.ExamPaid
	if req.ExamType != "" {
		examType := model.ExamType(req.ExamType)
		if !examType.Valid() {
			return fmt.Errorf("%w: unknown exam type %q", util.ErrValidation, req.ExamType)
		}
		exam.ExamType = examType
	}

	return nil
}

func (s *ExaminationService) Create(req ExaminationRequest) (*model.Examination, error) {
	exam := &model.Examination{}
	if err := s.buildExam(exam, req); err != nil {
		return nil, err
	}

	if err := s.ExamRepo.Create(exam, req.Questions); err != nil {
		return nil, err
	}
	return s.ExamRepo.FindByID(exam.ID)
}

func (s *ExaminationService) Get(id uint) (*model.Examination, error) {
	return s.ExamRepo.FindByID(id)
}

func (s *ExaminationService) List(search string, p pagination.Params) ([]model.Examination, pagination.Meta, error) {
	exams, total, err := s.ExamRepo.List(search, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return exams, pagination.NewMeta(p, total), nil
}

func (s *ExaminationService) Update(id uint, req ExaminationRequest) (*model.Examination, error) {
	exam, err := s.ExamRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.buildExam(exam, req); err != nil {
		return nil, err
	}
	exam.Questions = nil

	if err := s.ExamRepo.Update(exam, req.Questions); err != nil {
		return nil, err
	}
	return s.ExamRepo.FindByID(id)
}

func (s *ExaminationService) Delete(id uint) (*model.Examination, error) {
	return s.ExamRepo.Delete(id)
}
