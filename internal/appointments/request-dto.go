package appointments

type SelectServiceRequest struct {
	ServiceID int `json:"service_id" binding:"required,min=1"`
}

type SelectDateTimeRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// SubmitRequest carries the contact step. Field-level rules live in
// ValidateContact so the error messages stay aggregated and exact;
// binding only guards the JSON shape.
type SubmitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (r SubmitRequest) ToContactInfo() ContactInfo {
	return ContactInfo{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}
