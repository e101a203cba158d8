package request

// CreateGroupRequest 초대 그룹 생성 요청
// 사용 위치:
//   - internal/handler/group_handler.go: CreateGroup
//   - internal/service/group/service.go: CreateGroup
type CreateGroupRequest struct {
	GroupName       string `json:"groupName" binding:"required,max=50"`
	GroupType       string `json:"groupType" binding:"omitempty,oneof=WEDDING_GUEST PARENTS_GUEST COMPANY_GUEST"`
	UniqueCode      string `json:"uniqueCode"` // 비어 있으면 서버가 생성
	GreetingMessage string `json:"greetingMessage" binding:"max=500"`

	ShowRsvpForm        bool `json:"showRsvpForm"`
	ShowAccountInfo     bool `json:"showAccountInfo"`
	ShowShareButton     bool `json:"showShareButton"`
	ShowVenueInfo       bool `json:"showVenueInfo"`
	ShowPhotoGallery    bool `json:"showPhotoGallery"`
	ShowCeremonyProgram bool `json:"showCeremonyProgram"`

	VisibleAccountIndices []int `json:"visibleAccountIndices"`
}
