package model

// Subject 学科。主键为调用方提供的短编码（如 "MAT"），不自动生成。
// swagger:model Subject
type Subject struct {
	ID     string  `gorm:"primaryKey;size:3" json:"_id"`
	Name   string  `gorm:"size:50;not null" json:"name"`
	Topics []Topic `gorm:"foreignKey:SubjectID" json:"topics,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Topic 学科下的章节主题。主键同样为调用方提供的短编码（如 "MAT001"）。
// (name, subject_id) 必须全局唯一。
// swagger:model Topic
type Topic struct {
	ID        string   `gorm:"primaryKey;size:6" json:"_id"`
	Name      string   `gorm:"size:200;not null;default:'Introduction';uniqueIndex:idx_topic_name_subject" json:"name"`
	SubjectID string   `gorm:"size:3;not null;uniqueIndex:idx_topic_name_subject" json:"subject_id"`
	Subject   *Subject `gorm:"foreignKey:SubjectID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}
