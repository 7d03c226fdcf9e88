package dto

type UserDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	LastSignedIn string `json:"last_signed_in"`
}
