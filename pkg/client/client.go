// Package client 청첩장 서버 REST API 클라이언트 SDK
// 하객용 초대 페이지와 관리자 대시보드가 공용으로 사용한다
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wedding_invitation_server/pkg/errorx"
)

// APIError 서버가 내려준 비즈니스 에러
// 호출자는 메시지 문자열이 아닌 Code 로 분기한다
type APIError struct {
	Status int    // HTTP 상태 코드
	Code   int    // errorx 비즈니스 코드
	Msg    string // 사용자에게 보여줄 메시지
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d code=%d msg=%s", e.Status, e.Code, e.Msg)
}

// IsCode err 가 해당 비즈니스 코드의 APIError 인지 확인한다
func IsCode(err error, code int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

// envelope 서버 공통 응답 구조 {code, msg, data}
type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// msgString msg 는 문자열 또는 필드별 에러 맵일 수 있다
func (e *envelope) msgString() string {
	var s string
	if err := json.Unmarshal(e.Msg, &s); err == nil {
		return s
	}
	var m map[string]string
	if err := json.Unmarshal(e.Msg, &m); err == nil {
		for _, v := range m {
			return v // 첫 필드 에러만 대표로 보여준다
		}
	}
	return string(e.Msg)
}

// Client REST API 클라이언트
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session // nil 이면 비인증 요청
}

// Option 클라이언트 생성 옵션
type Option func(*Client)

// WithHTTPClient 커스텀 http.Client 주입 (테스트/타임아웃 조정용)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession 인증 세션 주입, 이후 요청에 Bearer 토큰이 붙는다
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

// New 클라이언트 생성
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSession 로그인 후 세션 교체
func (c *Client) SetSession(s *Session) {
	c.session = s
}

// Session 현재 세션 (없으면 nil)
func (c *Client) Session() *Session {
	return c.session
}

// do 요청 실행 공통 경로
// body/out 은 nil 허용. 2xx + code==CodeSuccess 가 아니면 *APIError 를 반환한다
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil && c.session.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		// 봉투 형식이 아니면 HTTP 상태로만 판단한다
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Code: errorx.CodeServerBusy, Msg: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Code != errorx.CodeSuccess {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Msg: env.msgString()}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Get GET 요청
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post POST 요청
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put PUT 요청
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete DELETE 요청
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
