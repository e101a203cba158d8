package request

// UpdateRsvpRequest 관리자의 RSVP 응답 수정 요청
// 사용 위치:
//   - internal/handler/rsvp_handler.go: UpdateRsvp
//   - internal/service/rsvp/service.go: UpdateRsvp
type UpdateRsvpRequest struct {
	ResponderName string   `json:"responderName" binding:"required"`
	IsAttending   bool     `json:"isAttending"`
	TotalCount    int      `json:"totalCount" binding:"min=0,max=10"`
	AttendeeNames []string `json:"attendeeNames"`
	PhoneNumber   string   `json:"phoneNumber" binding:"omitempty,max=20"`
	Message       string   `json:"message" binding:"omitempty,max=500"`
}
