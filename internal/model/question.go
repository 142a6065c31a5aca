package model

type DifficultyLevel string

const (
	VeryEasy DifficultyLevel = "LVL1"
	Easy     DifficultyLevel = "LVL2"
	Normal   DifficultyLevel = "LVL3"
	Hard     DifficultyLevel = "LVL4"
	VeryHard DifficultyLevel = "LVL5"
)

var difficultyLabels = map[DifficultyLevel]string{
	VeryEasy: "Very Easy",
	Easy:     "Easy",
	Normal:   "Normal",
	Hard:     "Hard",
	VeryHard: "Very Hard",
}

func (d DifficultyLevel) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

func (d DifficultyLevel) Label() string {
	return difficultyLabels[d]
}

// Question 题目。topic 和 attachment 外键可为空，但删除被引用的
// Topic/Image 时题目级联删除（保留原有 CASCADE 语义，不改为置空）。
// swagger:model Question
type Question struct {
	BaseModel
	Description              string           `gorm:"type:text" json:"description"`
	AttachmentID             *string          `gorm:"type:varchar(36);index" json:"attachment"`
	TopicID                  *string          `gorm:"size:6;index" json:"topic"`
	DifficultyLevel          DifficultyLevel  `gorm:"size:4;not null" json:"difficulty_level"`
	MarksAllotted            int              `gorm:"default:4" json:"marks_allotted"`
	CorrectAnswerProbability float64          `gorm:"default:0" json:"correct_answer_probability"`
	Options                  []QuestionOption `gorm:"foreignKey:ForQuestionID" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionOption 题目选项。必须归属一个题目，随题目级联删除。
// 选项按创建顺序（自增ID）保留展示顺序。
// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	ForQuestionID uint    `gorm:"not null;index" json:"for_question"`
	Description   string  `gorm:"type:text" json:"description"`
	AttachmentID  *string `gorm:"type:varchar(36);index" json:"attachment"`
	IsCorrect     bool    `gorm:"default:false" json:"is_correct"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
