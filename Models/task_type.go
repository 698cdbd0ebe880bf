package Models

type TaskType struct {
	Code        int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"column:name;size:255;not null"`
	Description string  `json:"description_of_the_task" gorm:"column:description_of_the_task;type:text;not null"`
	AddUserID   int     `json:"add_user_id" gorm:"column:add_user_id;not null"`
	AddDate     *string `json:"add_date" gorm:"column:add_date"`
	ModiUserID  *int    `json:"modi_user_id" gorm:"column:modi_user_id"`
	ModiDate    *string `json:"modi_date" gorm:"column:modi_date"`
}

func (TaskType) TableName() string {
	return "task_master"
}
