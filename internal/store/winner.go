package store

import (
	"context"
	"fmt"

	"leaderboard/internal/database"
	"leaderboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// winnerSelect 會帶出 winner 與其使用者，共 9 個欄位
const winnerSelect = `SELECT w.id, w.user_id, w.points_at_win, w.timestamp,
		u.id, u.name, u.age, u.address, u.points`

func scanWinner(row pgx.Row) (*model.Winner, error) {
	w := &model.Winner{}
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.PointsAtWin,
		&w.Timestamp,
		&w.User.ID,
		&w.User.Name,
		&w.User.Age,
		&w.User.Address,
		&w.User.Points,
	); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWinners 依宣告時間由新到舊列出所有 winner
func ListWinners(ctx context.Context, db database.DB) ([]model.Winner, error) {
	rows, err := db.Query(ctx,
		winnerSelect+`
		 FROM winners w JOIN users u ON u.id = w.user_id
		 ORDER BY w.timestamp DESC, w.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListWinners: %w", err)
	}
	defer rows.Close()

	winners := []model.Winner{}
	for rows.Next() {
		w, err := scanWinner(rows)
		if err != nil {
			return nil, fmt.Errorf("ListWinners: %w", err)
		}
		winners = append(winners, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWinners: %w", err)
	}
	return winners, nil
}

func GetWinnerByID(ctx context.Context, db database.DB, winnerID int) (*model.Winner, error) {
	row := db.QueryRow(ctx,
		winnerSelect+`
		 FROM winners w JOIN users u ON u.id = w.user_id
		 WHERE w.id = $1`,
		winnerID,
	)
	w, err := scanWinner(row)
	if err != nil {
		return nil, fmt.Errorf("GetWinnerByID: %w", translate(err))
	}
	return w, nil
}

// GetLatestWinner 回傳最近一次宣告的 winner
func GetLatestWinner(ctx context.Context, db database.DB) (*model.Winner, error) {
	row := db.QueryRow(ctx,
		winnerSelect+`
		 FROM winners w JOIN users u ON u.id = w.user_id
		 ORDER BY w.timestamp DESC, w.id DESC
		 LIMIT 1`,
	)
	w, err := scanWinner(row)
	if err != nil {
		return nil, fmt.Errorf("GetLatestWinner: %w", translate(err))
	}
	return w, nil
}

// CreateWinner 寫入一筆 winner，timestamp 由資料庫給定
func CreateWinner(ctx context.Context, db database.DB, userID int, pointsAtWin int) (*model.Winner, error) {
	row := db.QueryRow(ctx,
		`WITH w AS (
		   INSERT INTO winners (user_id, points_at_win)
		   VALUES ($1, $2)
		   RETURNING id, user_id, points_at_win, timestamp
		 )
		 `+winnerSelect+`
		 FROM w JOIN users u ON u.id = w.user_id`,
		userID,
		pointsAtWin,
	)
	w, err := scanWinner(row)
	if err != nil {
		return nil, fmt.Errorf("CreateWinner: %w", translate(err))
	}
	return w, nil
}

// UpdateWinner 更新 user_id 與 points_at_win，timestamp 保持不變
func UpdateWinner(ctx context.Context, db database.DB, w *model.Winner) (*model.Winner, error) {
	row := db.QueryRow(ctx,
		`WITH w AS (
		   UPDATE winners SET user_id = $1, points_at_win = $2
		   WHERE id = $3
		   RETURNING id, user_id, points_at_win, timestamp
		 )
		 `+winnerSelect+`
		 FROM w JOIN users u ON u.id = w.user_id`,
		w.UserID,
		w.PointsAtWin,
		w.ID,
	)
	updated, err := scanWinner(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateWinner: %w", translate(err))
	}
	return updated, nil
}

func DeleteWinner(ctx context.Context, db database.DB, winnerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM winners WHERE id = $1`,
		winnerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteWinner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteWinner: %w", ErrNotFound)
	}
	return nil
}
