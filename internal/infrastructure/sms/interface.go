// Package sms RSVP 접수 확인 문자 발송
// Alibaba Cloud SMS 구현과 로컬 mock 구현을 제공한다
package sms

// SmsService 문자 발송 인터페이스
// Service 레이어는 구체 구현이 아닌 이 인터페이스에 의존한다
type SmsService interface {
	// SendRsvpConfirmation RSVP 접수 확인 문자 발송
	// telephone: 수신 번호, responderName: 응답자 이름
	SendRsvpConfirmation(telephone, responderName string) error
}
