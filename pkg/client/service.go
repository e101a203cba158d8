package client

import (
	"context"
	"fmt"
	"net/url"

	"wedding_invitation_server/pkg/errorx"
)

// 엔드포인트별 타입 래퍼. 비즈니스 로직 없이 경로와 타입만 묶는다

// GetInvitation 초대 코드로 초대 페이지 데이터 조회 (공개)
func (c *Client) GetInvitation(ctx context.Context, code string) (*Invitation, error) {
	var out Invitation
	if err := c.Get(ctx, "/invitation/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitRsvp 하객 응답 제출 (공개)
func (c *Client) SubmitRsvp(ctx context.Context, code string, req RsvpSubmitRequest) (*Rsvp, error) {
	var out Rsvp
	if err := c.Post(ctx, "/rsvp/"+url.PathEscape(code), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGallery 갤러리 목록 (공개)
func (c *Client) GetGallery(ctx context.Context) ([]GalleryImage, error) {
	var out []GalleryImage
	if err := c.Get(ctx, "/gallery", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminLogin 관리자 로그인, 성공 시 클라이언트 세션을 교체한다
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*Session, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.Post(ctx, "/admin/login", body, &out); err != nil {
		return nil, err
	}
	session := NewSession(&out)
	c.SetSession(session)
	return session, nil
}

// RefreshToken Access Token 갱신, 성공 시 세션에 반영한다
func (c *Client) RefreshToken(ctx context.Context) error {
	if c.session == nil || c.session.RefreshToken == "" {
		return &APIError{Status: 401, Code: errorx.CodeUnauthorized, Msg: "세션이 없습니다"}
	}
	var out RefreshResult
	body := map[string]string{"refreshToken": c.session.RefreshToken}
	if err := c.Post(ctx, "/auth/refresh", body, &out); err != nil {
		return err
	}
	c.session.ApplyRefresh(&out)
	return nil
}

// CreateGroup 그룹 생성
func (c *Client) CreateGroup(ctx context.Context, req GroupCreateRequest) (*Group, error) {
	var out Group
	if err := c.Post(ctx, "/groups", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllGroups 전체 그룹 목록
func (c *Client) GetAllGroups(ctx context.Context) ([]Group, error) {
	var out []Group
	if err := c.Get(ctx, "/groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateGroup 그룹 부분 수정
func (c *Client) UpdateGroup(ctx context.Context, id int64, req GroupUpdateRequest) (*Group, error) {
	var out Group
	if err := c.Put(ctx, fmt.Sprintf("/groups/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGroup 그룹 삭제
// force=false 로 먼저 호출하고, CodeGroupHasResponses 가 오면
// 사용자 확인 후 force=true 로 다시 호출하는 것이 규약이다
func (c *Client) DeleteGroup(ctx context.Context, id int64, force bool) error {
	path := fmt.Sprintf("/groups/%d", id)
	if force {
		path += "?force=true"
	}
	return c.Delete(ctx, path)
}

// GetAllRsvps 전체 RSVP 목록
func (c *Client) GetAllRsvps(ctx context.Context) ([]Rsvp, error) {
	var out []Rsvp
	if err := c.Get(ctx, "/rsvp/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRsvp RSVP 수정
func (c *Client) UpdateRsvp(ctx context.Context, id int64, req RsvpSubmitRequest) (*Rsvp, error) {
	var out Rsvp
	if err := c.Put(ctx, fmt.Sprintf("/rsvp/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRsvp RSVP 삭제
func (c *Client) DeleteRsvp(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/rsvp/%d", id))
}

// CreateAdmin 관리자 계정 생성
func (c *Client) CreateAdmin(ctx context.Context, username, password, role string) (*Admin, error) {
	var out Admin
	body := map[string]string{"username": username, "password": password}
	if role != "" {
		body["role"] = role
	}
	if err := c.Post(ctx, "/admin/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAdminList 전체 관리자 목록
func (c *Client) GetAdminList(ctx context.Context) ([]Admin, error) {
	var out []Admin
	if err := c.Get(ctx, "/admin/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWeddingInfo 예식 정보 조회
func (c *Client) GetWeddingInfo(ctx context.Context) (*WeddingInfo, error) {
	var out WeddingInfo
	if err := c.Get(ctx, "/wedding-info", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWeddingInfo 예식 정보 부분 수정
func (c *Client) UpdateWeddingInfo(ctx context.Context, req WeddingInfoUpdateRequest) (*WeddingInfo, error) {
	var out WeddingInfo
	if err := c.Put(ctx, "/wedding-info", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGalleryImage 갤러리 사진 등록
func (c *Client) CreateGalleryImage(ctx context.Context, imageURL, caption string, sortOrder int) (*GalleryImage, error) {
	var out GalleryImage
	body := map[string]any{"url": imageURL, "caption": caption, "sortOrder": sortOrder}
	if err := c.Post(ctx, "/gallery", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGalleryImage 갤러리 사진 삭제
func (c *Client) DeleteGalleryImage(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/gallery/%d", id))
}
