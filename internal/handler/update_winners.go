package handler

import (
	"net/http"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/leaderboard"

	"github.com/labstack/echo/v4"
)

var updateWinners = leaderboard.UpdateWinners

// UpdateWinnersHandler 立即執行一次 winner 結算，與排程使用同一個函式
// @Summary     Declare a winner
// @Description 若目前有唯一最高分使用者則建立 winner (201)，同分或沒有使用者時回傳 tie (200)
// @Tags        winners
// @Produce     json
// @Success     201 {object} api.UpdateWinnersResponse
// @Success     200 {object} api.UpdateWinnersResponse "tie"
// @Failure     500 {object} api.ErrorResponse
// @Router      /update-winners [post]
func UpdateWinnersHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := updateWinners(c.Request().Context(), db, rdb)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if res.Status == leaderboard.StatusTie {
			return c.JSON(http.StatusOK, api.UpdateWinnersResponse{
				Status:  string(res.Status),
				Message: res.Message,
			})
		}
		return c.JSON(http.StatusCreated, api.UpdateWinnersResponse{
			Status: string(res.Status),
			Winner: res.Winner,
		})
	}
}
