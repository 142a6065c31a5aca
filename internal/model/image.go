package model

// Image 已上传到对象存储的附件记录。上传本身由存储服务完成，
// 这里只保存返回的 (id, url, name, folder) 元组。
// swagger:model Image
type Image struct {
	UUIDBase
	URL    string `gorm:"size:500" json:"url"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Folder string `gorm:"size:255" json:"folder"`
}

func (Image) TableName() string {
	return "images"
}
