// Package wedding 예식 정보/갤러리 관리 로직
package wedding

import (
	"context"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/internal/service/invitation"
	"wedding_invitation_server/pkg/errorx"
)

// weddingService WeddingService 구현
type weddingService struct {
	repos *mysql.Repositories
	cache myredis.AsyncCacheService
}

// NewWeddingService 의존성 주입 생성자
func NewWeddingService(repos *mysql.Repositories, cache myredis.AsyncCacheService) *weddingService {
	return &weddingService{
		repos: repos,
		cache: cache,
	}
}

// GetWeddingInfo 예식 정보 조회 (관리자)
func (s *weddingService) GetWeddingInfo() (*respond.WeddingInfoRespond, error) {
	info, err := s.repos.WeddingInfo.Get()
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "예식 정보가 아직 등록되지 않았습니다")
		}
		zap.L().Error("find wedding info error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toWeddingInfoRespond(info)
	return &rsp, nil
}

// UpdateWeddingInfo 예식 정보 부분 수정
// 아직 레코드가 없으면 새로 만든다 (단일 레코드 upsert)
// 모든 초대 페이지가 이 정보를 공유하므로 전체 캐시를 무효화한다
func (s *weddingService) UpdateWeddingInfo(req request.UpdateWeddingInfoRequest) (*respond.WeddingInfoRespond, error) {
	info, err := s.repos.WeddingInfo.Get()
	if err != nil {
		if errorx.GetCode(err) != errorx.CodeNotFound {
			zap.L().Error("find wedding info error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		info = &model.WeddingInfo{}
		info.ID = model.WeddingInfoID
	}

	applyWeddingInfoUpdate(info, req)

	if err := s.repos.WeddingInfo.Save(info); err != nil {
		zap.L().Error("save wedding info error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.cache.SubmitTask(func() {
		if err := s.cache.DeleteByPattern(context.Background(), invitation.CacheKeyPrefix+"*"); err != nil {
			zap.L().Error("invalidate invitation cache error", zap.Error(err))
		}
	})

	rsp := toWeddingInfoRespond(info)
	return &rsp, nil
}

// GetGallery 갤러리 목록 (공개)
func (s *weddingService) GetGallery() ([]respond.GalleryImageRespond, error) {
	images, err := s.repos.Gallery.FindAllOrdered()
	if err != nil {
		zap.L().Error("find gallery error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsps := make([]respond.GalleryImageRespond, 0, len(images))
	for i := range images {
		rsps = append(rsps, toGalleryRespond(&images[i]))
	}
	return rsps, nil
}

// CreateGalleryImage 사진 등록
func (s *weddingService) CreateGalleryImage(req request.CreateGalleryImageRequest) (*respond.GalleryImageRespond, error) {
	image := model.GalleryImage{
		Url:       req.Url,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}
	if err := s.repos.Gallery.Create(&image); err != nil {
		zap.L().Error("create gallery image error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toGalleryRespond(&image)
	return &rsp, nil
}

// DeleteGalleryImage 사진 삭제
func (s *weddingService) DeleteGalleryImage(id uint) error {
	if err := s.repos.Gallery.SoftDeleteByID(id); err != nil {
		zap.L().Error("delete gallery image error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// applyWeddingInfoUpdate 포인터 필드가 nil 이 아닌 항목만 반영한다
func applyWeddingInfoUpdate(info *model.WeddingInfo, req request.UpdateWeddingInfoRequest) {
	if req.GroomName != nil {
		info.GroomName = *req.GroomName
	}
	if req.BrideName != nil {
		info.BrideName = *req.BrideName
	}
	if req.WeddingDate != nil {
		info.WeddingDate = *req.WeddingDate
	}
	if req.VenueName != nil {
		info.VenueName = *req.VenueName
	}
	if req.VenueAddress != nil {
		info.VenueAddress = *req.VenueAddress
	}
	if req.VenueDetail != nil {
		info.VenueDetail = *req.VenueDetail
	}
	if req.KakaoMapUrl != nil {
		info.KakaoMapUrl = *req.KakaoMapUrl
	}
	if req.NaverMapUrl != nil {
		info.NaverMapUrl = *req.NaverMapUrl
	}
	if req.ParkingInfo != nil {
		info.ParkingInfo = *req.ParkingInfo
	}
	if req.TransportInfo != nil {
		info.TransportInfo = *req.TransportInfo
	}
	if req.GreetingMessage != nil {
		info.GreetingMessage = *req.GreetingMessage
	}
	if req.CeremonyProgram != nil {
		info.CeremonyProgram = *req.CeremonyProgram
	}
	if req.AccountInfo != nil {
		info.AccountInfo = *req.AccountInfo
	}
}

// toWeddingInfoRespond 모델 -> 응답 DTO 변환 (관리자 경로, 계좌 원본 포함)
func toWeddingInfoRespond(info *model.WeddingInfo) respond.WeddingInfoRespond {
	program := info.CeremonyProgram
	if program == nil {
		program = []string{}
	}
	accounts := info.AccountInfo
	if accounts == nil {
		accounts = []string{}
	}
	return respond.WeddingInfoRespond{
		GroomName:       info.GroomName,
		BrideName:       info.BrideName,
		WeddingDate:     info.WeddingDate,
		VenueName:       info.VenueName,
		VenueAddress:    info.VenueAddress,
		VenueDetail:     info.VenueDetail,
		KakaoMapUrl:     info.KakaoMapUrl,
		NaverMapUrl:     info.NaverMapUrl,
		ParkingInfo:     info.ParkingInfo,
		TransportInfo:   info.TransportInfo,
		GreetingMessage: info.GreetingMessage,
		CeremonyProgram: program,
		AccountInfo:     accounts,
	}
}

// toGalleryRespond 모델 -> 응답 DTO 변환
func toGalleryRespond(image *model.GalleryImage) respond.GalleryImageRespond {
	return respond.GalleryImageRespond{
		Id:        image.ID,
		Url:       image.Url,
		Caption:   image.Caption,
		SortOrder: image.SortOrder,
	}
}
