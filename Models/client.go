package Models

// Client mirrors the legacy client_master table. fileno is the natural key
// sub-allotments reference, so it stays unique and nullable.
type Client struct {
	Code       int     `json:"code" gorm:"column:code;primaryKey;autoIncrement"`
	Name       string  `json:"name" gorm:"column:name;size:255;not null"`
	FileNo     *string `json:"fileno" gorm:"column:fileno;size:50;unique"`
	FirmName   *string `json:"firmname" gorm:"column:firmname;size:255"`
	GstNo      *string `json:"gstno" gorm:"column:gstno;size:50"`
	Pan        *string `json:"pan" gorm:"column:pan;size:50"`
	Address    *string `json:"address" gorm:"column:address;type:text"`
	Mob        string  `json:"mob" gorm:"column:mob;size:15;not null"`
	Email      string  `json:"email" gorm:"column:email;size:255;not null"`
	FolderPath *string `json:"folderpath" gorm:"column:folderpath;type:text"`
	AddUserID  int     `json:"add_user_id" gorm:"column:add_user_id;not null"`
	AddDate    string  `json:"add_date" gorm:"column:add_date;not null"`
	ModiUserID *int    `json:"modi_user_id" gorm:"column:modi_user_id"`
	ModiDate   *string `json:"modi_date" gorm:"column:modi_date"`
}

func (Client) TableName() string {
	return "client_master"
}
