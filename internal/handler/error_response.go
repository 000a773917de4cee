package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Gregy/synology-surveillance-get-image/internal/handler/response"
)

type ErrorResponse = response.ErrorResponse

func SendError(c echo.Context, statusCode int, message string) error {
	return response.SendError(c, statusCode, message)
}
