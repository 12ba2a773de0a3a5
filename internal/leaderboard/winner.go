package leaderboard

import (
	"context"
	"fmt"

	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/model"
	"leaderboard/internal/store"

	"github.com/labstack/gommon/log"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusTie     Status = "tie"

	TieMessage = "No winner declared due to a tie"
)

// Result 是一次結算的結果；tie 不是錯誤
type Result struct {
	Status  Status
	Winner  *model.Winner
	Message string
}

var (
	listUsers         = store.ListUsers
	createWinner      = store.CreateWinner
	cacheLatestWinner = cache.SetLatestWinner
)

// SelectWinner 回傳唯一的最高分使用者；空集合或同分時 ok 為 false
func SelectWinner(users []model.User) (model.User, bool) {
	if len(users) == 0 {
		return model.User{}, false
	}
	top := users[0]
	count := 0
	for _, u := range users {
		switch {
		case u.Points > top.Points:
			top = u
			count = 1
		case u.Points == top.Points:
			count++
		}
	}
	return top, count == 1
}

// UpdateWinners 讀取目前所有使用者，若有唯一最高分則寫入一筆 winner。
// HTTP handler 與排程共用此函式。c 可為 nil。
func UpdateWinners(ctx context.Context, db database.DB, c cache.Cache) (Result, error) {
	users, err := listUsers(ctx, db)
	if err != nil {
		return Result{}, fmt.Errorf("UpdateWinners: %w", err)
	}

	top, ok := SelectWinner(users)
	if !ok {
		return Result{Status: StatusTie, Message: TieMessage}, nil
	}

	winner, err := createWinner(ctx, db, top.ID, top.Points)
	if err != nil {
		return Result{}, fmt.Errorf("UpdateWinners: %w", err)
	}

	if c != nil {
		if err := cacheLatestWinner(ctx, c, winner); err != nil {
			log.Warnf("cache latest winner %d: %v", winner.ID, err)
		}
	}
	return Result{Status: StatusSuccess, Winner: winner}, nil
}
