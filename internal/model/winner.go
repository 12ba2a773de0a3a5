// File: internal/model/winner.go
package model

import "time"

// Winner 記錄某次結算時唯一的最高分使用者
// PointsAtWin 是建立當下的分數快照，之後不隨使用者分數變動
type Winner struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	PointsAtWin int       `db:"points_at_win" json:"points_at_win"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	User        User      `db:"-" json:"user"`
}
