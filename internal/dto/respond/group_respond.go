package respond

// GroupRespond 초대 그룹 응답
// 사용 위치:
//   - internal/service/group/service.go: CreateGroup, GetAllGroups, UpdateGroup
type GroupRespond struct {
	Id              uint   `json:"id"`
	GroupName       string `json:"groupName"`
	GroupType       string `json:"groupType"`
	UniqueCode      string `json:"uniqueCode"`
	GreetingMessage string `json:"greetingMessage"`

	ShowRsvpForm        bool `json:"showRsvpForm"`
	ShowAccountInfo     bool `json:"showAccountInfo"`
	ShowShareButton     bool `json:"showShareButton"`
	ShowVenueInfo       bool `json:"showVenueInfo"`
	ShowPhotoGallery    bool `json:"showPhotoGallery"`
	ShowCeremonyProgram bool `json:"showCeremonyProgram"`

	VisibleAccountIndices []int `json:"visibleAccountIndices"`

	// RsvpCount 이 그룹의 RSVP 응답 수, 대시보드 목록에서 사용
	RsvpCount int64 `json:"rsvpCount"`
}
