package request

type CreateBookingRequest struct {
	WorkerID        string `json:"worker_id" validate:"required,uuid4"`
	ServiceCategory string `json:"service_category" validate:"required,oneof=BABYSITTING TUTORING HANDYMAN CLEANING LANDSCAPING PET_CARE OTHER"`
	Message         string `json:"message" validate:"required,min=10"`
	ProposedDate    string `json:"proposed_date" validate:"required"`
	ProposedTime    string `json:"proposed_time" validate:"required,min=1"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED DECLINED COMPLETED CANCELLED"`
}
