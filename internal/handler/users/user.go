package users

import (
	"errors"
	"net/http"
	"strconv"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/leaderboard"
	"leaderboard/internal/middleware"
	"leaderboard/internal/model"
	"leaderboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers     = store.ListUsers
	createUser    = store.CreateUser
	getUserByID   = store.GetUserByID
	updateUser    = store.UpdateUser
	addUserPoints = store.AddUserPoints
	deleteUser    = store.DeleteUser

	invalidateLatestWinner = cache.InvalidateLatestWinner
)

// parseUserID 非數字 id 視同不存在的資源
func parseUserID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func storeError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
}

// dropLatestWinner 快取的最新 winner 內嵌整筆 user，使用者異動後需清除，失敗只記錄
func dropLatestWinner(c echo.Context, rdb cache.Cache) {
	if err := invalidateLatestWinner(c.Request().Context(), rdb); err != nil {
		c.Logger().Warnf("[%s] invalidate latest winner cache: %v", middleware.RequestIDFrom(c), err)
	}
}

func bindUser(c echo.Context) (*api.UserRequest, api.FieldErrors) {
	var req api.UserRequest
	if err := c.Bind(&req); err != nil {
		return nil, api.NewFieldErrors(err)
	}
	req.Trim()
	if err := c.Validate(&req); err != nil {
		return nil, api.NewFieldErrors(err)
	}
	return &req, nil
}

// @Summary     List users
// @Description 依分數由高到低列出所有使用者
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserList(users))
	}
}

// @Summary     Create a new user
// @Description 建立使用者，points 省略時為 0
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.UserRequest true "使用者資料"
// @Success     201  {object} model.User
// @Failure     400  {object} api.FieldErrors
// @Failure     500  {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, fieldErrs := bindUser(c)
		if fieldErrs != nil {
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:    *req.Name,
			Age:     *req.Age,
			Address: *req.Address,
			Points:  req.PointsOrZero(),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, user)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} model.User
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Replace a user by ID
// @Description 更新使用者，points 省略時保留原本分數
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int             true "使用者 ID"
// @Param       body body     api.UserRequest true "使用者資料"
// @Success     200  {object} model.User
// @Failure     400  {object} api.FieldErrors
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		req, fieldErrs := bindUser(c)
		if fieldErrs != nil {
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}

		user, err := updateUser(c.Request().Context(), db, &model.User{
			ID:      id,
			Name:    *req.Name,
			Age:     *req.Age,
			Address: *req.Address,
		}, req.Points)
		if err != nil {
			return storeError(c, err)
		}
		dropLatestWinner(c, rdb)
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Delete a user by ID
// @Description 刪除使用者，其 winner 紀錄一併刪除
// @Tags        users
// @Param       id  path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return storeError(c, err)
		}
		// cascade 可能刪掉快取中的最新 winner
		dropLatestWinner(c, rdb)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Adjust a user's score
// @Description 將 change 加到目前分數 (可為負數)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "使用者 ID"
// @Param       body body     api.UpdateScoreRequest true "分數變化"
// @Success     200  {object} model.User
// @Failure     400  {object} api.ScoreValidationResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/{id}/update_score [patch]
func UpdateScoreHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		var req api.UpdateScoreRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ScoreValidationResponse{ValidationErrors: api.NewFieldErrors(err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ScoreValidationResponse{ValidationErrors: api.NewFieldErrors(err)})
		}

		user, err := addUserPoints(c.Request().Context(), db, id, *req.Change)
		if err != nil {
			return storeError(c, err)
		}
		dropLatestWinner(c, rdb)
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Users grouped by score
// @Description 以分數分組 (由高到低)，附上每組名字與平均年齡 (向下取整)
// @Tags        users
// @Produce     json
// @Success     200 {object} map[string]api.ScoreGroupResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/grouped_by_score [get]
func GroupedByScoreHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, leaderboard.GroupByScore(users))
	}
}
