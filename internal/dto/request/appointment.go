package request

type CreateAppointmentRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"required,min=8,max=20"`
	CategoryID string  `json:"category_id" validate:"required,uuid4"`
	ServiceID  string  `json:"service_id" validate:"required,uuid4"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required,datetime=15:04"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
