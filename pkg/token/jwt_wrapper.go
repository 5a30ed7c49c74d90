package token

import "videotube_service/pkg/config"

// 這些變數會在測試時被覆蓋，讓 usecase 測試可以 mock JWT 行為
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper 讓 `memberUseCase` test mock使用這個包裝函數
func GenerateJWTWrapper(memberID, role string) (string, error) {
	return GenerateJWTFunc(memberID, role, config.EnvConfig.ServiceName)
}

// ParseJWTWrapper 讓 `memberUseCase` test mock使用這個包裝函數
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
