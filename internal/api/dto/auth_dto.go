package dto

type RegisterDTO struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Name     *string `json:"name,omitempty" binding:"omitempty,max=150"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

type UserDTO struct {
	ID       uint64  `json:"id"`
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	IsActive bool    `json:"is_active"`
}
