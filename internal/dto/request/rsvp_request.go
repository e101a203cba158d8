package request

// RsvpRequest 하객 RSVP 제출 요청
// 사용 위치:
//   - internal/handler/rsvp_handler.go: SubmitRsvp
//   - internal/service/rsvp/service.go: SubmitRsvp
type RsvpRequest struct {
	ResponderName string   `json:"responderName" binding:"required"`
	IsAttending   bool     `json:"isAttending"`
	TotalCount    int      `json:"totalCount" binding:"min=0,max=10"`
	AttendeeNames []string `json:"attendeeNames"`
	PhoneNumber   string   `json:"phoneNumber" binding:"omitempty,max=20"`
	Message       string   `json:"message" binding:"omitempty,max=500"`
}
