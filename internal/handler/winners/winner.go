package winners

import (
	"errors"
	"net/http"
	"strconv"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/middleware"
	"leaderboard/internal/model"
	"leaderboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listWinners       = store.ListWinners
	getWinnerByID     = store.GetWinnerByID
	getLatestWinner   = store.GetLatestWinner
	createWinner      = store.CreateWinner
	updateWinner      = store.UpdateWinner
	deleteWinner      = store.DeleteWinner
	cachedWinner      = cache.GetLatestWinner
	cacheLatestWinner = cache.SetLatestWinner
	invalidateLatest  = cache.InvalidateLatestWinner
)

func parseWinnerID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "winner not found"})
	case errors.Is(err, store.ErrUnknownUser):
		fields := api.FieldErrors{}
		fields.Add("user_id", "Invalid pk - object does not exist.")
		return c.JSON(http.StatusBadRequest, fields)
	default:
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
}

// dropLatest 在 winner 異動後清除最新 winner 快取，失敗只記錄
func dropLatest(c echo.Context, rdb cache.Cache) {
	if err := invalidateLatest(c.Request().Context(), rdb); err != nil {
		c.Logger().Warnf("[%s] invalidate latest winner cache: %v", middleware.RequestIDFrom(c), err)
	}
}

func bindWinner(c echo.Context) (*api.WinnerRequest, api.FieldErrors) {
	var req api.WinnerRequest
	if err := c.Bind(&req); err != nil {
		return nil, api.NewFieldErrors(err)
	}
	if err := c.Validate(&req); err != nil {
		return nil, api.NewFieldErrors(err)
	}
	return &req, nil
}

// @Summary     List winners
// @Description 依宣告時間由新到舊列出所有 winner
// @Tags        winners
// @Produce     json
// @Success     200 {object} api.WinnerListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /winners [get]
func ListWinnersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		winners, err := listWinners(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewWinnerList(winners))
	}
}

// @Summary     Create a winner
// @Description 手動建立 winner；一般由 update-winners 產生
// @Tags        winners
// @Accept      json
// @Produce     json
// @Param       body body     api.WinnerRequest true "winner 資料"
// @Success     201  {object} model.Winner
// @Failure     400  {object} api.FieldErrors
// @Failure     500  {object} api.ErrorResponse
// @Router      /winners [post]
func CreateWinnerHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, fieldErrs := bindWinner(c)
		if fieldErrs != nil {
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}
		winner, err := createWinner(c.Request().Context(), db, *req.UserID, *req.PointsAtWin)
		if err != nil {
			return storeError(c, err)
		}
		dropLatest(c, rdb)
		return c.JSON(http.StatusCreated, winner)
	}
}

// @Summary     Get a winner by ID
// @Tags        winners
// @Produce     json
// @Param       id  path     int true "winner ID"
// @Success     200 {object} model.Winner
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /winners/{id} [get]
func GetWinnerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseWinnerID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "winner not found"})
		}
		winner, err := getWinnerByID(c.Request().Context(), db, id)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, winner)
	}
}

// @Summary     Update a winner by ID
// @Description 更新 user_id 與 points_at_win，timestamp 不變
// @Tags        winners
// @Accept      json
// @Produce     json
// @Param       id   path     int               true "winner ID"
// @Param       body body     api.WinnerRequest true "winner 資料"
// @Success     200  {object} model.Winner
// @Failure     400  {object} api.FieldErrors
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /winners/{id} [put]
func UpdateWinnerHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseWinnerID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "winner not found"})
		}
		req, fieldErrs := bindWinner(c)
		if fieldErrs != nil {
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}
		winner, err := updateWinner(c.Request().Context(), db, &model.Winner{
			ID:          id,
			UserID:      *req.UserID,
			PointsAtWin: *req.PointsAtWin,
		})
		if err != nil {
			return storeError(c, err)
		}
		dropLatest(c, rdb)
		return c.JSON(http.StatusOK, winner)
	}
}

// @Summary     Delete a winner by ID
// @Tags        winners
// @Param       id  path int true "winner ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /winners/{id} [delete]
func DeleteWinnerHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseWinnerID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "winner not found"})
		}
		if err := deleteWinner(c.Request().Context(), db, id); err != nil {
			return storeError(c, err)
		}
		dropLatest(c, rdb)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Latest winner
// @Description 回傳最近一次宣告的 winner，優先讀取 redis，miss 時查詢資料庫並回填
// @Tags        winners
// @Produce     json
// @Success     200 {object} model.Winner
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /winners/latest [get]
func LatestWinnerHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		winner, err := cachedWinner(ctx, rdb)
		if err == nil {
			return c.JSON(http.StatusOK, winner)
		}
		if !errors.Is(err, cache.ErrMiss) {
			c.Logger().Warnf("[%s] read latest winner from cache: %v", middleware.RequestIDFrom(c), err)
		}

		winner, err = getLatestWinner(ctx, db)
		if err != nil {
			return storeError(c, err)
		}
		if err := cacheLatestWinner(ctx, rdb, winner); err != nil {
			c.Logger().Warnf("[%s] refill latest winner cache: %v", middleware.RequestIDFrom(c), err)
		}
		return c.JSON(http.StatusOK, winner)
	}
}
