package request

// UpdateWeddingInfoRequest 예식 정보 부분 수정 요청
// 포인터 필드는 nil 이면 해당 항목을 건드리지 않는다
// 사용 위치:
//   - internal/handler/wedding_handler.go: UpdateWeddingInfo
//   - internal/service/wedding/service.go: UpdateWeddingInfo
type UpdateWeddingInfoRequest struct {
	GroomName       *string   `json:"groomName" binding:"omitempty,max=30"`
	BrideName       *string   `json:"brideName" binding:"omitempty,max=30"`
	WeddingDate     *string   `json:"weddingDate" binding:"omitempty,max=30"`
	VenueName       *string   `json:"venueName" binding:"omitempty,max=100"`
	VenueAddress    *string   `json:"venueAddress" binding:"omitempty,max=200"`
	VenueDetail     *string   `json:"venueDetail" binding:"omitempty,max=200"`
	KakaoMapUrl     *string   `json:"kakaoMapUrl" binding:"omitempty,max=255"`
	NaverMapUrl     *string   `json:"naverMapUrl" binding:"omitempty,max=255"`
	ParkingInfo     *string   `json:"parkingInfo" binding:"omitempty,max=500"`
	TransportInfo   *string   `json:"transportInfo" binding:"omitempty,max=500"`
	GreetingMessage *string   `json:"greetingMessage" binding:"omitempty,max=500"`
	CeremonyProgram *[]string `json:"ceremonyProgram"`
	AccountInfo     *[]string `json:"accountInfo"`
}
