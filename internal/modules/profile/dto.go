package profile

// UpdateProfileRequest carries partial profile fields. Changing the
// password additionally requires the current one.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}
