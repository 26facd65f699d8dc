package user

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

type CreateUserDTO struct {
	Email     string  `json:"email" validate:"required,email"`
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	RoleID    *int64  `json:"role_id" validate:"required"`
	Password  *string `json:"password" validate:"required,maxbytes=72"`
}
