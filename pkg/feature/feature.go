// Package feature 그룹별 노출 기능 결정 로직
// 초대 페이지 서버와 클라이언트 SDK 가 같은 규칙을 공유한다
package feature

// Flags 그룹별 노출 기능 플래그
// 동적 키 map 대신 고정 필드 구조체를 사용한다
type Flags struct {
	ShowRsvpForm        bool `json:"showRsvpForm"`
	ShowAccountInfo     bool `json:"showAccountInfo"`
	ShowShareButton     bool `json:"showShareButton"`
	ShowVenueInfo       bool `json:"showVenueInfo"`
	ShowPhotoGallery    bool `json:"showPhotoGallery"`
	ShowCeremonyProgram bool `json:"showCeremonyProgram"`
}

// Section 초대 페이지 섹션 식별자
type Section string

const (
	SectionGreeting        Section = "greeting"        // 인사말, 항상 노출
	SectionCeremonyProgram Section = "ceremonyProgram" // 예식 순서
	SectionPhotoGallery    Section = "photoGallery"    // 갤러리
	SectionRsvp            Section = "rsvp"            // RSVP 폼 + 예식 정보 + 오시는 길 묶음
	SectionVenueAccount    Section = "venueAccount"    // 오시는 길/계좌 복합 섹션
	SectionShare           Section = "share"           // 공유 버튼
)

// Tab 복합 섹션의 탭 식별자
type Tab string

const (
	TabDirections Tab = "directions" // 오시는 길
	TabParking    Tab = "parking"    // 주차 안내
	TabAccount    Tab = "account"    // 마음 전하실 곳
)

// VenuePlan 오시는 길/계좌 복합 섹션의 렌더링 계획
type VenuePlan struct {
	// Tabs 노출할 탭 목록, 비어 있으면 탭 UI 없음
	Tabs []Tab `json:"tabs"`
	// DefaultTab 데이터 로딩 직후 활성화할 탭
	DefaultTab Tab `json:"defaultTab,omitempty"`
	// DirectAccount 탭 없이 계좌 안내만 바로 노출
	DirectAccount bool `json:"directAccount"`
}

// ResolveVenuePlan 복합 섹션의 탭 구성을 결정한다
// 규칙:
//   - 둘 다 꺼짐: 아무것도 렌더링하지 않음
//   - 계좌만 켜짐: 탭 없이 계좌 안내 바로 노출
//   - 오시는 길만 켜짐: {directions, parking} 탭, 기본 directions
//   - 둘 다 켜짐: {directions, parking, account} 탭, 기본 directions
func ResolveVenuePlan(f Flags) VenuePlan {
	switch {
	case !f.ShowVenueInfo && !f.ShowAccountInfo:
		return VenuePlan{}
	case !f.ShowVenueInfo && f.ShowAccountInfo:
		return VenuePlan{DirectAccount: true, DefaultTab: TabAccount}
	case f.ShowVenueInfo && !f.ShowAccountInfo:
		return VenuePlan{
			Tabs:       []Tab{TabDirections, TabParking},
			DefaultTab: TabDirections,
		}
	default:
		return VenuePlan{
			Tabs:       []Tab{TabDirections, TabParking, TabAccount},
			DefaultTab: TabDirections,
		}
	}
}

// ResolveSections 초대 페이지에 노출할 섹션을 순서대로 반환한다
// ShowRsvpForm 은 RSVP 폼과 예식 정보/오시는 길 블록을 하나의 묶음으로 gate 한다
func ResolveSections(f Flags) []Section {
	sections := []Section{SectionGreeting}
	if f.ShowCeremonyProgram {
		sections = append(sections, SectionCeremonyProgram)
	}
	if f.ShowPhotoGallery {
		sections = append(sections, SectionPhotoGallery)
	}
	if f.ShowRsvpForm {
		sections = append(sections, SectionRsvp)
	}
	if f.ShowVenueInfo || f.ShowAccountInfo {
		sections = append(sections, SectionVenueAccount)
	}
	if f.ShowShareButton {
		sections = append(sections, SectionShare)
	}
	return sections
}

// FilterAccountRows 그룹 설정에 따라 노출할 계좌 행만 추려 반환한다
// indices 가 비어 있으면 기본값으로 첫 번째 행만 노출한다
func FilterAccountRows(rows []string, indices []int) []string {
	if len(rows) == 0 {
		return []string{}
	}
	if len(indices) == 0 {
		indices = []int{0}
	}
	filtered := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(rows) {
			filtered = append(filtered, rows[idx])
		}
	}
	return filtered
}
