package Models

// Suballotment is the free-text variant of SubAllotment: same concept, no
// foreign keys, names instead of codes, completed as a yes/no flag. The two
// tables coexist upstream; see DESIGN.md before touching either.
type Suballotment struct {
	Code           int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	FileName       *string `json:"file_name" gorm:"column:file_name;size:255"`
	AllotedBy      *string `json:"alloted_by" gorm:"column:alloted_by;size:255"`
	AllotedTo      *string `json:"alloted_to" gorm:"column:alloted_to;size:255"`
	TaskName       *string `json:"task_name" gorm:"column:task_name;size:255"`
	Description    *string `json:"description" gorm:"column:description;type:text"`
	AllotedDate    *string `json:"alloted_date" gorm:"column:alloted_date;type:date"`
	Completed      string  `json:"completed" gorm:"column:completed;size:3;default:no"`
	CompletionDate *string `json:"completion_date" gorm:"column:completion_date;type:date"`
	AddUserID      *string `json:"add_user_id" gorm:"column:add_user_id;size:100"`
	AddDate        *string `json:"add_date" gorm:"column:add_date;type:date"`
	ModiUserID     *string `json:"modi_user_id" gorm:"column:modi_user_id;size:100"`
	ModiDate       *string `json:"modi_date" gorm:"column:modi_date;type:date"`
}

func (Suballotment) TableName() string {
	return "suballotments"
}
