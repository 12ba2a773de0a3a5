package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const ContextRequestIDKey = "request_id"

var newID = uuid.NewString

// RequestID 以 uuid 產生 X-Request-Id，已帶入的 header 會沿用，
// 並存進 context 供 handler 記錄使用
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return newID() },
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(ContextRequestIDKey, id)
		},
	})
}

// RequestIDFrom 取出目前請求的 id，未經過 RequestID 時回傳空字串
func RequestIDFrom(c echo.Context) string {
	id, _ := c.Get(ContextRequestIDKey).(string)
	return id
}
