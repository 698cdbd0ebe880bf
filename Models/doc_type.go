package Models

type DocType struct {
	Code        int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"column:name;size:255;not null"`
	Description string  `json:"description" gorm:"column:description;type:text;not null"`
	AddUserID   int     `json:"add_user_id" gorm:"column:add_user_id;not null"`
	AddDate     *string `json:"add_date" gorm:"column:add_date"`
	ModiUserID  *int    `json:"modi_user_id" gorm:"column:modi_user_id"`
	ModiDate    *string `json:"modi_date" gorm:"column:modi_date"`
}

func (DocType) TableName() string {
	return "doc_type_master"
}
