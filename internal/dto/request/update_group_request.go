package request

// UpdateGroupRequest 초대 그룹 부분 수정 요청
// 포인터 필드는 nil 이면 해당 항목을 건드리지 않는다
// 사용 위치:
//   - internal/handler/group_handler.go: UpdateGroup
//   - internal/service/group/service.go: UpdateGroup
type UpdateGroupRequest struct {
	GroupName       *string `json:"groupName" binding:"omitempty,max=50"`
	GroupType       *string `json:"groupType" binding:"omitempty,oneof=WEDDING_GUEST PARENTS_GUEST COMPANY_GUEST"`
	UniqueCode      *string `json:"uniqueCode"`
	GreetingMessage *string `json:"greetingMessage" binding:"omitempty,max=500"`

	ShowRsvpForm        *bool `json:"showRsvpForm"`
	ShowAccountInfo     *bool `json:"showAccountInfo"`
	ShowShareButton     *bool `json:"showShareButton"`
	ShowVenueInfo       *bool `json:"showVenueInfo"`
	ShowPhotoGallery    *bool `json:"showPhotoGallery"`
	ShowCeremonyProgram *bool `json:"showCeremonyProgram"`

	VisibleAccountIndices *[]int `json:"visibleAccountIndices"`
}
