package feature

import (
	"reflect"
	"testing"
)

func TestResolveVenuePlan(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  VenuePlan
	}{
		{
			name:  "둘 다 꺼짐이면 렌더링 없음",
			flags: Flags{},
			want:  VenuePlan{},
		},
		{
			name:  "계좌만 켜지면 탭 없이 바로 노출",
			flags: Flags{ShowAccountInfo: true},
			want:  VenuePlan{DirectAccount: true, DefaultTab: TabAccount},
		},
		{
			name:  "오시는 길만 켜지면 directions/parking 탭",
			flags: Flags{ShowVenueInfo: true},
			want: VenuePlan{
				Tabs:       []Tab{TabDirections, TabParking},
				DefaultTab: TabDirections,
			},
		},
		{
			name:  "둘 다 켜지면 세 탭, 기본 directions",
			flags: Flags{ShowVenueInfo: true, ShowAccountInfo: true},
			want: VenuePlan{
				Tabs:       []Tab{TabDirections, TabParking, TabAccount},
				DefaultTab: TabDirections,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVenuePlan(tt.flags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveVenuePlan(%+v) = %+v, want %+v", tt.flags, got, tt.want)
			}
		})
	}
}

func TestResolveSections(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  []Section
	}{
		{
			name:  "모두 꺼져도 인사말은 노출",
			flags: Flags{},
			want:  []Section{SectionGreeting},
		},
		{
			name: "전체 켜짐이면 순서대로 전부",
			flags: Flags{
				ShowRsvpForm:        true,
				ShowAccountInfo:     true,
				ShowShareButton:     true,
				ShowVenueInfo:       true,
				ShowPhotoGallery:    true,
				ShowCeremonyProgram: true,
			},
			want: []Section{
				SectionGreeting,
				SectionCeremonyProgram,
				SectionPhotoGallery,
				SectionRsvp,
				SectionVenueAccount,
				SectionShare,
			},
		},
		{
			name:  "RSVP 플래그가 RSVP 묶음을 gate",
			flags: Flags{ShowRsvpForm: true},
			want:  []Section{SectionGreeting, SectionRsvp},
		},
		{
			name:  "계좌만 켜져도 복합 섹션은 노출",
			flags: Flags{ShowAccountInfo: true},
			want:  []Section{SectionGreeting, SectionVenueAccount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSections(tt.flags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveSections(%+v) = %v, want %v", tt.flags, got, tt.want)
			}
		})
	}
}

func TestFilterAccountRows(t *testing.T) {
	rows := []string{"신랑 계좌", "신부 계좌", "혼주 계좌"}

	tests := []struct {
		name    string
		rows    []string
		indices []int
		want    []string
	}{
		{
			name:    "빈 indices 는 첫 행만",
			rows:    rows,
			indices: nil,
			want:    []string{"신랑 계좌"},
		},
		{
			name:    "지정 행만 추림",
			rows:    rows,
			indices: []int{0, 2},
			want:    []string{"신랑 계좌", "혼주 계좌"},
		},
		{
			name:    "범위 밖 인덱스는 무시",
			rows:    rows,
			indices: []int{1, 5, -1},
			want:    []string{"신부 계좌"},
		},
		{
			name:    "계좌 행이 없으면 빈 목록",
			rows:    nil,
			indices: []int{0},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAccountRows(tt.rows, tt.indices)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterAccountRows(%v, %v) = %v, want %v", tt.rows, tt.indices, got, tt.want)
			}
		})
	}
}
