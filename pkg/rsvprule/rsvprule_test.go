package rsvprule

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		isAttending bool
		totalCount  int
		names       []string
		wantCount   int
		wantNames   []string
	}{
		{
			name:        "불참이면 인원/이름을 비운다",
			isAttending: false,
			totalCount:  3,
			names:       []string{"김철수", "이영희"},
			wantCount:   0,
			wantNames:   []string{},
		},
		{
			name:        "참석 최소 인원 1명",
			isAttending: true,
			totalCount:  0,
			names:       nil,
			wantCount:   1,
			wantNames:   []string{""},
		},
		{
			name:        "상한 초과는 10명으로 clamp",
			isAttending: true,
			totalCount:  15,
			names:       nil,
			wantCount:   10,
			wantNames:   []string{"", "", "", "", "", "", "", "", "", ""},
		},
		{
			name:        "이름이 많으면 잘라낸다",
			isAttending: true,
			totalCount:  2,
			names:       []string{"김철수", "이영희", "박민수"},
			wantCount:   2,
			wantNames:   []string{"김철수", "이영희"},
		},
		{
			name:        "이름이 모자라면 빈 문자열로 채운다",
			isAttending: true,
			totalCount:  3,
			names:       []string{"김철수"},
			wantCount:   3,
			wantNames:   []string{"김철수", "", ""},
		},
		{
			name:        "이름 양끝 공백 제거",
			isAttending: true,
			totalCount:  2,
			names:       []string{" 김철수 ", "이영희  "},
			wantCount:   2,
			wantNames:   []string{"김철수", "이영희"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCount, gotNames := Normalize(tt.isAttending, tt.totalCount, tt.names)
			if gotCount != tt.wantCount {
				t.Errorf("count = %d, want %d", gotCount, tt.wantCount)
			}
			if !reflect.DeepEqual(gotNames, tt.wantNames) {
				t.Errorf("names = %v, want %v", gotNames, tt.wantNames)
			}
		})
	}
}

func TestValidateResponderName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"두 글자 한글", "철수", true},
		{"공백 포함 두 글자", "  철수  ", true},
		{"한 글자", "철", false},
		{"공백뿐", "   ", false},
		{"빈 문자열", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateResponderName(tt.input); got != tt.want {
				t.Errorf("ValidateResponderName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasEmptyName(t *testing.T) {
	if !HasEmptyName([]string{"김철수", " "}) {
		t.Error("공백뿐인 이름을 찾지 못했다")
	}
	if HasEmptyName([]string{"김철수", "이영희"}) {
		t.Error("모두 채워진 목록에서 빈 이름이 있다고 판단했다")
	}
}
