package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 表示指定 id 的資料列不存在
	ErrNotFound = errors.New("not found")
	// ErrUnknownUser 表示 winner 指向不存在的使用者 (foreign key violation)
	ErrUnknownUser = errors.New("referenced user does not exist")
)

const foreignKeyViolation = "23503"

// translate 把 pgx 的錯誤轉成 store 的 sentinel error，其他錯誤原樣回傳
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrUnknownUser
	}
	return err
}
