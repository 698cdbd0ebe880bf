package Models

// Document records received paperwork against a task allotment. The FK
// cascades on delete and update, so removing a task removes its documents.
type Document struct {
	Code        int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	TaskCode    int     `json:"task_code" gorm:"column:task_code;not null;index"`
	DocName     string  `json:"doc_name" gorm:"column:doc_name;size:255;not null"`
	Description *string `json:"description" gorm:"column:description;type:text"`
	AddUserID   *int    `json:"add_user_id" gorm:"column:add_user_id"`
	AddDate     *string `json:"add_date" gorm:"column:add_date"`
	ModiUserID  *int    `json:"modi_user_id" gorm:"column:modi_user_id"`
	ModiDate    *string `json:"modi_date" gorm:"column:modi_date"`

	Task *TaskAllotment `json:"-" gorm:"foreignKey:TaskCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Document) TableName() string {
	return "documents"
}
