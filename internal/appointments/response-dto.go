package appointments

import "time"

// SessionResponse is the wizard state as the client sees it: the raw
// session plus derived fields so the client never recomputes them.
type SessionResponse struct {
	ID        string      `json:"id"`
	Step      int         `json:"step"`
	StepName  string      `json:"step_name"`
	Status    string      `json:"status"`
	Service   *Service    `json:"service,omitempty"`
	Date      string      `json:"date,omitempty"`
	Time      string      `json:"time,omitempty"`
	Contact   ContactInfo `json:"contact"`
	Dates     []string    `json:"dates"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func ToSessionResponse(s *Session) SessionResponse {
	resp := SessionResponse{
		ID:        s.ID,
		Step:      s.Step,
		StepName:  StepName(s.Step),
		Status:    s.Status.String(),
		Date:      s.Date,
		Time:      s.Time,
		Contact:   s.Contact,
		Dates:     s.Dates,
		UpdatedAt: s.UpdatedAt,
	}
	if s.HasService() {
		if svc, ok := FindService(s.ServiceID); ok {
			resp.Service = &svc
		}
	}
	return resp
}

type SlotsResponse struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}
