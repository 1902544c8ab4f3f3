package handler

import (
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// toUserResponse flattens a profile-enriched account into the transport shape.
func toUserResponse(v *ports.UserView) userResponse {
	resp := userResponse{
		UserID:     v.User.ID,
		Email:      v.User.Email,
		Role:       v.User.Role,
		ImageURL:   v.User.ImageURL,
		IsActive:   v.User.IsActive,
		IsVerified: v.User.IsVerified,
		CreatedAt:  v.User.CreatedAt.UTC(),
	}

	switch {
	case v.ClientProfile != nil:
		resp.Profile = clientProfileResponse{
			FirstName:   v.ClientProfile.FirstName,
			LastName:    v.ClientProfile.LastName,
			Gender:      v.ClientProfile.Gender,
			DateOfBirth: v.ClientProfile.DateOfBirth.UTC().Format("2006-01-02"),
			Phone:       v.ClientProfile.Phone,
			Address:     v.ClientProfile.Address,
		}
	case v.DoctorProfile != nil:
		resp.Profile = doctorProfileResponse{
			LicenseNumber:  v.DoctorProfile.LicenseNumber,
			Specialization: v.DoctorProfile.Specialization,
		}
	}

	return resp
}

func toUserResponses(views []*ports.UserView) []userResponse {
	out := make([]userResponse, len(views))
	for i, v := range views {
		out[i] = toUserResponse(v)
	}
	return out
}
