package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/dto"
	"game-news/cmd/api/services"
	"game-news/internal/logger"
)

// AdminLoginHandler godoc
// @Summary      관리자 로그인
// @Description  관리자 비밀번호를 검증하고 세션 토큰을 발급합니다.
// @Tags         auth
// @Param        request  body  dto.AdminLoginRequestDTO  true  "관리자 비밀번호"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AdminLoginResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /admin/login [post]
func AdminLoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdminLoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		token, err := svc.Login(req.Password)
		if err != nil {
			if errors.Is(err, services.ErrPasswordNotConfigured) {
				logger.Log.Error("admin login attempted but ADMIN_PASSWORD is not set")
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "admin_gate_not_configured"})
				return
			}
			// 실패 사유를 구분해 노출하지 않는다.
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_password"})
			return
		}

		c.JSON(http.StatusOK, dto.AdminLoginResponseDTO{Token: token})
	}
}
