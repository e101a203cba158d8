package sms

import (
	"encoding/json"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"go.uber.org/zap"

	"wedding_invitation_server/internal/config"
	"wedding_invitation_server/pkg/errorx"
)

// noopSmsService 발송 비활성/mock 구현
// 설정에 AccessKey 가 없거나 발송이 꺼져 있으면 사용한다
type noopSmsService struct{}

func (s *noopSmsService) SendRsvpConfirmation(telephone, responderName string) error {
	zap.L().Info("[MockSMS] RSVP 접수 확인",
		zap.String("telephone", telephone),
		zap.String("responder", responderName),
	)
	return nil
}

// aliyunSmsService Alibaba Cloud SMS 구현
type aliyunSmsService struct {
	client       *dysmsapi20170525.Client
	signName     string
	templateCode string
}

// shouldUseMock AccessKey 미설정/자리표시자면 mock 으로 동작
func shouldUseMock(conf config.SmsConfig) bool {
	if !conf.Enabled {
		return true
	}
	ak := strings.ToLower(strings.TrimSpace(conf.AccessKeyID))
	secret := strings.ToLower(strings.TrimSpace(conf.AccessKeySecret))
	if ak == "" || secret == "" {
		return true
	}
	return strings.Contains(ak, "your accesskey") || strings.Contains(secret, "your accesskey")
}

// Init SMS 서비스 초기화
func Init() (SmsService, error) {
	conf := config.GetConfig().SmsConfig
	if shouldUseMock(conf) {
		zap.L().Warn("SMS 발송 비활성, mock 모드로 동작")
		return &noopSmsService{}, nil
	}

	apiConf := &openapi.Config{
		AccessKeyId:     tea.String(conf.AccessKeyID),
		AccessKeySecret: tea.String(conf.AccessKeySecret),
		Endpoint:        tea.String("dysmsapi.aliyuncs.com"),
	}
	client, err := dysmsapi20170525.NewClient(apiConf)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "SMS client 초기화 실패")
	}
	return &aliyunSmsService{
		client:       client,
		signName:     conf.SignName,
		templateCode: conf.TemplateCode,
	}, nil
}

// SendRsvpConfirmation 접수 확인 문자 발송
func (s *aliyunSmsService) SendRsvpConfirmation(telephone, responderName string) error {
	param, err := json.Marshal(map[string]string{"name": responderName})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "SMS 템플릿 파라미터 생성 실패")
	}

	req := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(telephone),
		SignName:      tea.String(s.signName),
		TemplateCode:  tea.String(s.templateCode),
		TemplateParam: tea.String(string(param)),
	}
	runtime := &util.RuntimeOptions{}

	resp, err := s.client.SendSmsWithOptions(req, runtime)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "SMS 발송 실패")
	}
	if resp.Body == nil {
		return errorx.New(errorx.CodeServerBusy, "SMS 발송 실패: 응답 없음")
	}
	if tea.StringValue(resp.Body.Code) != "OK" {
		return errorx.Newf(errorx.CodeServerBusy, "SMS 발송 실패: %s", tea.StringValue(resp.Body.Message))
	}
	return nil
}
