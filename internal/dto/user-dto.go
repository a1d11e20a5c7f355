package dto

type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

type ShortUserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}
