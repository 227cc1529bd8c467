package entity

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleWorker   UserRole = "WORKER"
)

type User struct {
	Base
	Name            string   `db:"name"`
	Email           string   `db:"email"`
	PasswordHash    string   `db:"password"`
	Phone           *string  `db:"phone"`
	ProfileImageURL *string  `db:"profile_image_url"`
	Role            UserRole `db:"role"`
}
