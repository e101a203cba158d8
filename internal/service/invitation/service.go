// Package invitation 하객용 초대 페이지 조회 로직
package invitation

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/feature"
)

// CacheKeyPrefix 초대 페이지 캐시 키 접두사
// 그룹/예식 정보가 바뀌면 이 접두사로 일괄 무효화한다
const CacheKeyPrefix = "invitation_page_"

// invitationService InvitationService 구현
type invitationService struct {
	repos *mysql.Repositories
	cache myredis.AsyncCacheService
}

// NewInvitationService 의존성 주입 생성자
func NewInvitationService(repos *mysql.Repositories, cache myredis.AsyncCacheService) *invitationService {
	return &invitationService{
		repos: repos,
		cache: cache,
	}
}

// GetInvitation 초대 코드로 초대 페이지 데이터 조회
// 조회 경로: 캐시 -> DB, 캐시 재적재는 비동기로 처리한다
func (s *invitationService) GetInvitation(code string) (*respond.InvitationRespond, error) {
	cacheKey := CacheKeyPrefix + code

	// 1. 캐시 조회
	cached, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && cached != "" {
		var rsp respond.InvitationRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return &rsp, nil
		}
		// 캐시가 깨졌으면 DB 로 내려간다
		zap.L().Warn("invitation cache unmarshal failed, fallback to DB", zap.String("code", code), zap.Error(err))
	} else if err != nil {
		zap.L().Error("redis get error", zap.Error(err))
	}

	// 2. 그룹 조회
	group, err := s.repos.Group.FindByUniqueCode(code)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "유효하지 않은 초대 코드입니다")
		}
		zap.L().Error("find group by code error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 3. 예식 정보 조회
	// 아직 등록 전이면 weddingInfo 는 null 로 내려가고 클라이언트가 빈 상태를 렌더링한다
	var weddingInfo *model.WeddingInfo
	if info, err := s.repos.WeddingInfo.Get(); err == nil {
		weddingInfo = info
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error("find wedding info error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := buildInvitation(group, weddingInfo)

	// 4. 비동기 캐시 재적재
	s.cache.SubmitTask(func() {
		data, err := json.Marshal(rsp)
		if err != nil {
			zap.L().Error("marshal invitation for cache error", zap.Error(err))
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(data), time.Minute*30); err != nil {
			zap.L().Error("set invitation cache error", zap.Error(err))
		}
	})

	return rsp, nil
}

// buildInvitation 그룹 플래그를 섹션/탭 계획으로 풀어 응답을 구성한다
func buildInvitation(group *model.InvitationGroup, weddingInfo *model.WeddingInfo) *respond.InvitationRespond {
	flags := group.FeatureFlags()

	greeting := group.GreetingMessage
	var weddingRsp *respond.WeddingInfoRespond
	accountRows := []string{}
	if weddingInfo != nil {
		if greeting == "" {
			greeting = weddingInfo.GreetingMessage
		}
		accountRows = weddingInfo.AccountInfo
		weddingRsp = &respond.WeddingInfoRespond{
			GroomName:       weddingInfo.GroomName,
			BrideName:       weddingInfo.BrideName,
			WeddingDate:     weddingInfo.WeddingDate,
			VenueName:       weddingInfo.VenueName,
			VenueAddress:    weddingInfo.VenueAddress,
			VenueDetail:     weddingInfo.VenueDetail,
			KakaoMapUrl:     weddingInfo.KakaoMapUrl,
			NaverMapUrl:     weddingInfo.NaverMapUrl,
			ParkingInfo:     weddingInfo.ParkingInfo,
			TransportInfo:   weddingInfo.TransportInfo,
			GreetingMessage: weddingInfo.GreetingMessage,
			CeremonyProgram: weddingInfo.CeremonyProgram,
			// 계좌 목록 원본은 내려주지 않는다. 그룹별로 추린 AccountInfo 만 노출
		}
	}

	accountInfo := []string{}
	if flags.ShowAccountInfo {
		accountInfo = feature.FilterAccountRows(accountRows, group.VisibleAccountIndices)
	}

	return &respond.InvitationRespond{
		WeddingInfo: weddingRsp,
		GroupInfo: respond.InvitationGroupInfo{
			GroupName:       group.GroupName,
			GroupType:       group.GroupType,
			GreetingMessage: greeting,
		},
		AvailableFeatures: flags,
		Sections:          feature.ResolveSections(flags),
		VenuePlan:         feature.ResolveVenuePlan(flags),
		AccountInfo:       accountInfo,
	}
}
