// Package group 초대 그룹 관리 로직
package group

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/internal/service/invitation"
	"wedding_invitation_server/pkg/constants"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/util/random"
)

// codeRegexp 초대 코드 형식, 서버에서도 한 번 더 검증한다
var codeRegexp = regexp.MustCompile(constants.UniqueCodePattern)

// autoCodeLength 자동 생성 초대 코드 길이
const autoCodeLength = 8

// groupService GroupService 구현
type groupService struct {
	repos *mysql.Repositories
	cache myredis.AsyncCacheService
}

// NewGroupService 의존성 주입 생성자
func NewGroupService(repos *mysql.Repositories, cache myredis.AsyncCacheService) *groupService {
	return &groupService{
		repos: repos,
		cache: cache,
	}
}

// CreateGroup 그룹 생성
// 초대 코드가 비어 있으면 자동 생성하고, 중복이면 CodeDuplicateCode 를 반환한다
func (s *groupService) CreateGroup(req request.CreateGroupRequest) (*respond.GroupRespond, error) {
	code := req.UniqueCode
	if code == "" {
		generated, err := s.generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	} else {
		if !codeRegexp.MatchString(code) {
			return nil, errorx.New(errorx.CodeInvalidCodeFormat, "초대 코드는 3~20자의 영문/숫자/하이픈만 가능합니다")
		}
		exists, err := s.repos.Group.ExistsByUniqueCode(code, 0)
		if err != nil {
			zap.L().Error("check unique code error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if exists {
			return nil, errorx.New(errorx.CodeDuplicateCode, "이미 존재하는 초대 코드입니다")
		}
	}

	groupType := req.GroupType
	if groupType == "" {
		groupType = model.GroupTypeWeddingGuest
	}
	indices := req.VisibleAccountIndices
	if len(indices) == 0 {
		indices = []int{0}
	}

	group := model.InvitationGroup{
		GroupName:             req.GroupName,
		GroupType:             groupType,
		UniqueCode:            code,
		GreetingMessage:       req.GreetingMessage,
		ShowRsvpForm:          req.ShowRsvpForm,
		ShowAccountInfo:       req.ShowAccountInfo,
		ShowShareButton:       req.ShowShareButton,
		ShowVenueInfo:         req.ShowVenueInfo,
		ShowPhotoGallery:      req.ShowPhotoGallery,
		ShowCeremonyProgram:   req.ShowCeremonyProgram,
		VisibleAccountIndices: indices,
	}
	if err := s.repos.Group.Create(&group); err != nil {
		zap.L().Error("create group error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := toGroupRespond(&group, 0)
	return &rsp, nil
}

// GetAllGroups 전체 그룹 목록, 그룹별 RSVP 응답 수를 함께 내려준다
func (s *groupService) GetAllGroups() ([]respond.GroupRespond, error) {
	groups, err := s.repos.Group.FindAll()
	if err != nil {
		zap.L().Error("find all groups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	counts, err := s.repos.Rsvp.CountGroupedByGroupID()
	if err != nil {
		zap.L().Error("count rsvp per group error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// len=0 으로 초기화해 직렬화 결과가 null 이 아닌 [] 가 되게 한다
	rsps := make([]respond.GroupRespond, 0, len(groups))
	for i := range groups {
		rsps = append(rsps, toGroupRespond(&groups[i], counts[groups[i].ID]))
	}
	return rsps, nil
}

// UpdateGroup 그룹 부분 수정
// 초대 코드 변경 시 형식/중복을 검증하고, 기존/새 코드의 초대 페이지 캐시를 무효화한다
func (s *groupService) UpdateGroup(id uint, req request.UpdateGroupRequest) (*respond.GroupRespond, error) {
	group, err := s.repos.Group.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "그룹을 찾을 수 없습니다")
		}
		zap.L().Error("find group error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	oldCode := group.UniqueCode
	if req.UniqueCode != nil && *req.UniqueCode != group.UniqueCode {
		newCode := *req.UniqueCode
		if !codeRegexp.MatchString(newCode) {
			return nil, errorx.New(errorx.CodeInvalidCodeFormat, "초대 코드는 3~20자의 영문/숫자/하이픈만 가능합니다")
		}
		exists, err := s.repos.Group.ExistsByUniqueCode(newCode, id)
		if err != nil {
			zap.L().Error("check unique code error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if exists {
			return nil, errorx.New(errorx.CodeDuplicateCode, "이미 존재하는 초대 코드입니다")
		}
		group.UniqueCode = newCode
	}

	if req.GroupName != nil {
		group.GroupName = *req.GroupName
	}
	if req.GroupType != nil {
		group.GroupType = *req.GroupType
	}
	if req.GreetingMessage != nil {
		group.GreetingMessage = *req.GreetingMessage
	}
	if req.ShowRsvpForm != nil {
		group.ShowRsvpForm = *req.ShowRsvpForm
	}
	if req.ShowAccountInfo != nil {
		group.ShowAccountInfo = *req.ShowAccountInfo
	}
	if req.ShowShareButton != nil {
		group.ShowShareButton = *req.ShowShareButton
	}
	if req.ShowVenueInfo != nil {
		group.ShowVenueInfo = *req.ShowVenueInfo
	}
	if req.ShowPhotoGallery != nil {
		group.ShowPhotoGallery = *req.ShowPhotoGallery
	}
	if req.ShowCeremonyProgram != nil {
		group.ShowCeremonyProgram = *req.ShowCeremonyProgram
	}
	if req.VisibleAccountIndices != nil {
		group.VisibleAccountIndices = *req.VisibleAccountIndices
	}

	if err := s.repos.Group.Update(group); err != nil {
		zap.L().Error("update group error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.invalidateInvitationCache(oldCode, group.UniqueCode)

	count, err := s.repos.Rsvp.CountByGroupID(id)
	if err != nil {
		zap.L().Error("count rsvp error", zap.Error(err))
		count = 0
	}
	rsp := toGroupRespond(group, count)
	return &rsp, nil
}

// DeleteGroup 그룹 삭제 (2단계)
// RSVP 응답이 남아 있으면 force 없이는 거부한다. 강제 삭제는 호출자가
// 사용자 확인을 거친 뒤 force=true 로 다시 호출해야 한다
func (s *groupService) DeleteGroup(id uint, force bool) error {
	group, err := s.repos.Group.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "그룹을 찾을 수 없습니다")
		}
		zap.L().Error("find group error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	count, err := s.repos.Rsvp.CountByGroupID(id)
	if err != nil {
		zap.L().Error("count rsvp error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if count > 0 && !force {
		return errorx.Newf(errorx.CodeGroupHasResponses, "이 그룹에는 RSVP 응답 %d건이 있습니다. 강제 삭제를 확인해주세요", count)
	}

	if count > 0 {
		// 강제 삭제: 응답과 그룹을 한 트랜잭션으로 제거
		err = s.repos.Transaction(func(txRepos *mysql.Repositories) error {
			if err := txRepos.Rsvp.SoftDeleteByGroupID(id); err != nil {
				return err
			}
			return txRepos.Group.SoftDeleteByID(id)
		})
	} else {
		err = s.repos.Group.SoftDeleteByID(id)
	}
	if err != nil {
		zap.L().Error("delete group error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	s.invalidateInvitationCache(group.UniqueCode)
	return nil
}

// generateCode 중복되지 않는 초대 코드를 자동 생성한다
func (s *groupService) generateCode() (string, error) {
	for i := 0; i < 5; i++ {
		code := random.GetRandomString(autoCodeLength)
		exists, err := s.repos.Group.ExistsByUniqueCode(code, 0)
		if err != nil {
			zap.L().Error("check unique code error", zap.Error(err))
			return "", errorx.ErrServerBusy
		}
		if !exists {
			return code, nil
		}
	}
	return "", errorx.New(errorx.CodeServerBusy, "초대 코드 생성에 실패했습니다. 다시 시도해주세요")
}

// invalidateInvitationCache 해당 코드들의 초대 페이지 캐시를 비동기로 무효화한다
func (s *groupService) invalidateInvitationCache(codes ...string) {
	s.cache.SubmitTask(func() {
		for _, code := range codes {
			if err := s.cache.Delete(context.Background(), invitation.CacheKeyPrefix+code); err != nil {
				zap.L().Error("invalidate invitation cache error", zap.Error(err))
			}
		}
	})
}

// toGroupRespond 모델 -> 응답 DTO 변환
func toGroupRespond(group *model.InvitationGroup, rsvpCount int64) respond.GroupRespond {
	return respond.GroupRespond{
		Id:                    group.ID,
		GroupName:             group.GroupName,
		GroupType:             group.GroupType,
		UniqueCode:            group.UniqueCode,
		GreetingMessage:       group.GreetingMessage,
		ShowRsvpForm:          group.ShowRsvpForm,
		ShowAccountInfo:       group.ShowAccountInfo,
		ShowShareButton:       group.ShowShareButton,
		ShowVenueInfo:         group.ShowVenueInfo,
		ShowPhotoGallery:      group.ShowPhotoGallery,
		ShowCeremonyProgram:   group.ShowCeremonyProgram,
		VisibleAccountIndices: group.VisibleAccountIndices,
		RsvpCount:             rsvpCount,
	}
}
