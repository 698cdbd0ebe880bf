package Models

// SubAllotment is the constrained variant: fileno references
// client_master.fileno and both employee columns reference user_details.
// No cascade is declared, so a client with sub-allotments cannot be deleted.
type SubAllotment struct {
	Code           int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	FileNo         *string `json:"fileno" gorm:"column:fileno;size:80"`
	AllotedDate    string  `json:"alloted_date" gorm:"column:alloted_date;type:date;not null"`
	AllotedBy      *int    `json:"alloted_by" gorm:"column:alloted_by"`
	AllotedTo      *int    `json:"alloted_to" gorm:"column:alloted_to"`
	TaskName       string  `json:"task_name" gorm:"column:task_name;size:80;not null"`
	Description    *string `json:"description" gorm:"column:description;type:text"`
	Completed      int     `json:"completed" gorm:"column:completed;default:0"`
	CompletionDate *string `json:"completion_date" gorm:"column:completion_date;type:date"`
	AddUserID      *string `json:"add_user_id" gorm:"column:add_user_id;size:50"`
	AddDate        *string `json:"add_date" gorm:"column:add_date;type:date"`
	ModiUserID     *string `json:"modi_user_id" gorm:"column:modi_user_id;size:50"`
	ModiDate       *string `json:"modi_date" gorm:"column:modi_date"`

	Client      *Client   `json:"-" gorm:"belongsTo;foreignKey:FileNo;references:FileNo"`
	AllotterEmp *Employee `json:"-" gorm:"foreignKey:AllotedBy;references:Code"`
	AllotteeEmp *Employee `json:"-" gorm:"foreignKey:AllotedTo;references:Code"`
}

func (SubAllotment) TableName() string {
	return "sub_allotment"
}
