// File: internal/router/router.go
package router

import (
	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/handler"
	"leaderboard/internal/handler/users"
	"leaderboard/internal/handler/winners"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	// /api/users/ 與 /api/users 視為同一路徑
	e.Pre(echomw.RemoveTrailingSlash())

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 手動觸發 winner 結算，排程也呼叫同一個函式
	api.POST("/update-winners", handler.UpdateWinnersHandler(db, rdb))

	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("/grouped_by_score", users.GroupedByScoreHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db, rdb))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb))
	apiUsers.PATCH("/:id/update_score", users.UpdateScoreHandler(db, rdb))

	apiWinners := api.Group("/winners")
	apiWinners.GET("", winners.ListWinnersHandler(db))
	apiWinners.POST("", winners.CreateWinnerHandler(db, rdb))
	apiWinners.GET("/latest", winners.LatestWinnerHandler(db, rdb))
	apiWinners.GET("/:id", winners.GetWinnerHandler(db))
	apiWinners.PUT("/:id", winners.UpdateWinnerHandler(db, rdb))
	apiWinners.DELETE("/:id", winners.DeleteWinnerHandler(db, rdb))
}
