package Models

// Employee rows live in user_details; task and sub-allotments reference them
// as allotter/receiver/allottee.
type Employee struct {
	Code           int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	Name           string  `json:"name" gorm:"column:name;size:100;not null"`
	Address        *string `json:"address" gorm:"column:address;type:text"`
	MobileNumber   *string `json:"mobile_number" gorm:"column:mobile_number;size:15"`
	Qualification  *string `json:"qualification" gorm:"column:qualification;size:100"`
	DOB            *string `json:"dob" gorm:"column:dob;type:date"`
	WorkExperience *string `json:"work_experience" gorm:"column:work_experience;type:text"`
	KeySkills      *string `json:"key_skills" gorm:"column:key_skills;type:text"`
	Reference      *string `json:"reference" gorm:"column:reference;type:text"`
	Email          *string `json:"email" gorm:"column:email;size:100"`
	AddUserID      int     `json:"add_user_id" gorm:"column:add_user_id;not null"`
	AddDate        *string `json:"add_date" gorm:"column:add_date"`
	ModiUserID     *int    `json:"modi_user_id" gorm:"column:modi_user_id"`
	ModiDate       *string `json:"modi_date" gorm:"column:modi_date"`
}

func (Employee) TableName() string {
	return "user_details"
}
