package handler

type updateProfileRequest struct {
	Email          *string `json:"email"           validate:"omitempty,email"`
	ImageURL       *string `json:"image_url"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	LicenseNumber  *string `json:"license_number"`
	Specialization *string `json:"specialization"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type upgradeDoctorRequest struct {
	LicenseNumber  string `json:"license_number"  validate:"required"`
	Specialization string `json:"specialization"  validate:"required"`
}

type userListResponse struct {
	Data []userResponse `json:"data"`
}
