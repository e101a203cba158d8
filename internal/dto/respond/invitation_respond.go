package respond

import (
	"wedding_invitation_server/pkg/feature"
)

// InvitationGroupInfo 초대 페이지에 노출되는 그룹 정보
// 관리용 필드(id, 노출 설정 원본)는 내려주지 않는다
type InvitationGroupInfo struct {
	GroupName       string `json:"groupName"`
	GroupType       string `json:"groupType"`
	GreetingMessage string `json:"greetingMessage"`
}

// InvitationRespond GET /invitation/{uniqueCode} 응답
// weddingInfo 가 아직 등록되지 않았으면 null 로 내려가고
// 클라이언트는 빈 상태 안내를 렌더링한다
type InvitationRespond struct {
	WeddingInfo       *WeddingInfoRespond `json:"weddingInfo"`
	GroupInfo         InvitationGroupInfo `json:"groupInfo"`
	AvailableFeatures feature.Flags       `json:"availableFeatures"`

	// Sections 노출 섹션 순서, VenuePlan 복합 섹션 탭 구성
	Sections  []feature.Section `json:"sections"`
	VenuePlan feature.VenuePlan `json:"venuePlan"`

	// AccountInfo 이 그룹에 노출할 계좌 행만 추린 목록
	AccountInfo []string `json:"accountInfo"`
}
