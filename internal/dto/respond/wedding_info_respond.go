package respond

// WeddingInfoRespond 예식 공통 정보
// 사용 위치:
//   - internal/service/wedding/service.go: GetWeddingInfo, UpdateWeddingInfo
//   - internal/service/invitation/service.go: GetInvitation
type WeddingInfoRespond struct {
	GroomName       string   `json:"groomName"`
	BrideName       string   `json:"brideName"`
	WeddingDate     string   `json:"weddingDate"`
	VenueName       string   `json:"venueName"`
	VenueAddress    string   `json:"venueAddress"`
	VenueDetail     string   `json:"venueDetail"`
	KakaoMapUrl     string   `json:"kakaoMapUrl"`
	NaverMapUrl     string   `json:"naverMapUrl"`
	ParkingInfo     string   `json:"parkingInfo"`
	TransportInfo   string   `json:"transportInfo"`
	GreetingMessage string   `json:"greetingMessage"`
	CeremonyProgram []string `json:"ceremonyProgram"`
	AccountInfo     []string `json:"accountInfo"`
}
