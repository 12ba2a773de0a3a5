package store

import (
	"context"
	"fmt"

	"leaderboard/internal/database"
	"leaderboard/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, age, address, points`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Age,
		&u.Address,
		&u.Points,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers 依分數由高到低列出所有使用者，同分時以 id 排序
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY points DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", translate(err))
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, age, address, points)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.Name,
		u.Age,
		u.Address,
		u.Points,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser 覆寫 name、age、address；points 為 nil 時保留原本分數
func UpdateUser(ctx context.Context, db database.DB, u *model.User, points *int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET name = $1, age = $2, address = $3, points = COALESCE($4, points)
		 WHERE id = $5
		 RETURNING `+userColumns,
		u.Name,
		u.Age,
		u.Address,
		points,
		u.ID,
	)
	updated, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", translate(err))
	}
	return updated, nil
}

// AddUserPoints 在單一 UPDATE 中累加分數，避免 read-modify-write 的競態
func AddUserPoints(ctx context.Context, db database.DB, userID int, change int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET points = points + $1
		 WHERE id = $2
		 RETURNING `+userColumns,
		change,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("AddUserPoints: %w", translate(err))
	}
	return u, nil
}

// DeleteUser 刪除使用者；winners 由 ON DELETE CASCADE 一併移除
func DeleteUser(ctx context.Context, db database.DB, ID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}
