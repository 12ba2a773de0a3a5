// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := database.Healthy(ctx, db); err != nil {
			c.Logger().Errorf("ping database: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cache.Healthy(ctx, rdb); err != nil {
			c.Logger().Errorf("ping cache: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
