package models

// User defines the user model based on the 'users' table.
// Password holds the bcrypt digest and is excluded from JSON.
type User struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Type        string `json:"type" db:"type" example:"admin"`
	FullName    string `json:"full_name" db:"full_name" example:"Amit Kumar"`
	Username    string `json:"username" db:"username" example:"amit"`
	Email       string `json:"email" db:"email" example:"amit@example.com"`
	Password    string `json:"-" db:"password"`
	SubmittedBy string `json:"submitted_by" db:"submitted_by" example:"system"`
	UpdatedBy   string `json:"updated_by" db:"updated_by" example:"system"`
}
