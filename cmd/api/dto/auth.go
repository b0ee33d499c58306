package dto

// AdminLoginRequestDTO 는 관리자 게이트 로그인 요청 바디다.
type AdminLoginRequestDTO struct {
	Password string `json:"password"`
}

// AdminLoginResponseDTO 는 발급된 세션 토큰을 담는다.
type AdminLoginResponseDTO struct {
	Token string `json:"token"`
}
