package model

import "time"

type ExamType string

const (
	ExamFree ExamType = "F"
	ExamPaid ExamType = "P"
)

func (t ExamType) Valid() bool {
	return t == ExamFree || t == ExamPaid
}

// swagger:model Examination
type Examination struct {
	BaseModel
	ExamName        string          `gorm:"size:255" json:"exam_name"`
	ExamDate        *time.Time      `json:"exam_date"`
	DifficultyLevel DifficultyLevel `gorm:"size:4;default:'LVL3'" json:"difficulty_level"`
	FullMarks       int             `gorm:"default:0" json:"full_marks"`
	MaxTime         int             `gorm:"default:0" json:"max_time"`
	ExamType        ExamType        `gorm:"size:1;default:'P'" json:"exam_type"`
	Questions       []Question      `gorm:"many2many:examination_questions" json:"questions,omitempty"`
}

func (Examination) TableName() string {
	return "examinations"
}
