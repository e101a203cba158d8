package respond

// RsvpRespond RSVP 응답 조회 결과
// PhoneNumber 는 복호화된 값이다 (관리자 전용 경로에서만 반환)
// 사용 위치:
//   - internal/service/rsvp/service.go: SubmitRsvp, GetAllRsvps, UpdateRsvp
type RsvpRespond struct {
	Id            uint     `json:"id"`
	GroupId       uint     `json:"groupId"`
	GroupName     string   `json:"groupName,omitempty"`
	ResponderName string   `json:"responderName"`
	IsAttending   bool     `json:"isAttending"`
	TotalCount    int      `json:"totalCount"`
	AttendeeNames []string `json:"attendeeNames"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	Message       string   `json:"message,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}
