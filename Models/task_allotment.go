package Models

// TaskAllotment is the top-level work item. Three employee references plus a
// client reference, all nullable; documents hang off it with cascade delete.
// Audit user ids are VARCHAR here, unlike the master tables.
type TaskAllotment struct {
	Code            int      `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	AllotDate       *string  `json:"allot_date" gorm:"column:allot_date;type:date"`
	DueDate         *string  `json:"due_date" gorm:"column:due_date;type:date"`
	RMEmpCode       *int     `json:"rm_emp_code" gorm:"column:rm_emp_code"`
	ReceivedBy      *int     `json:"received_by" gorm:"column:received_by"`
	PlacedAt        *string  `json:"placed_at" gorm:"column:placed_at;size:255"`
	ClientCode      *int     `json:"client_code" gorm:"column:client_code"`
	FinancialYear   *string  `json:"financial_year" gorm:"column:financial_year;size:50"`
	AssessmentMonth *string  `json:"assessment_month" gorm:"column:assessment_month;size:50"`
	AssessmentFor   *string  `json:"assessment_for" gorm:"column:assessment_for;size:255"`
	AllotedTo       *int     `json:"alloted_to" gorm:"column:alloted_to"`
	Status          *string  `json:"status" gorm:"column:status;size:50"`
	DocReceivedBy   *string  `json:"doc_received_by" gorm:"column:doc_received_by;size:255"`
	KeyFactor       *string  `json:"key_factor" gorm:"column:key_factor;type:text"`
	PrimeTaskname   *string  `json:"prime_taskname" gorm:"column:prime_taskname;size:255"`
	SubTaskname     *string  `json:"sub_taskname" gorm:"column:sub_taskname;size:255"`
	TimeTaken       *float64 `json:"time_taken_to_complete" gorm:"column:time_taken_to_complete;type:decimal(5,2)"`
	AddUserID       *string  `json:"add_user_id" gorm:"column:add_user_id;size:50"`
	AddDate         *string  `json:"add_date" gorm:"column:add_date"`
	ModiUserID      *string  `json:"modi_user_id" gorm:"column:modi_user_id;size:50"`
	ModiDate        *string  `json:"modi_date" gorm:"column:modi_date"`

	RMEmployee     *Employee `json:"-" gorm:"foreignKey:RMEmpCode;references:Code"`
	Receiver       *Employee `json:"-" gorm:"foreignKey:ReceivedBy;references:Code"`
	AllotedEmp     *Employee `json:"-" gorm:"foreignKey:AllotedTo;references:Code"`
	AllotedClient  *Client   `json:"-" gorm:"foreignKey:ClientCode;references:Code"`
}

func (TaskAllotment) TableName() string {
	return "tasks_allotment_master"
}
