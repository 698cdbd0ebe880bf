package Models

// User backs /login only. Credentials are stored and compared in plaintext
// for compatibility with the existing users table; see DESIGN.md.
type User struct {
	ID       string  `json:"id" gorm:"column:id;primaryKey;size:50"`
	Password string  `json:"password" gorm:"column:password;size:255;not null"`
	Name     *string `json:"name" gorm:"column:name;size:100"`
	Email    *string `json:"email" gorm:"column:email;size:255"`
	Role     *string `json:"role" gorm:"column:role;size:50"`
}

func (User) TableName() string {
	return "users"
}
