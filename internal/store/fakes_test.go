package store

import (
	"time"

	"leaderboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

func fillUser(dest []any, u model.User) {
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*int) = u.Age
	*dest[3].(*string) = u.Address
	*dest[4].(*int) = u.Points
}

func fillWinner(dest []any, w model.Winner) {
	*dest[0].(*int) = w.ID
	*dest[1].(*int) = w.UserID
	*dest[2].(*int) = w.PointsAtWin
	*dest[3].(*time.Time) = w.Timestamp
	fillUser(dest[4:], w.User)
}

// fakeRow 依 dest 數量決定填入的內容：
// 1 → RETURNING id、5 → users 欄位、9 → winners + users 欄位
type fakeRow struct {
	scanErr error
	user    model.User
	winner  model.Winner
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 1:
		*dest[0].(*int) = r.user.ID
	case 5:
		fillUser(dest, r.user)
	case 9:
		fillWinner(dest, r.winner)
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，users 或 winners 擇一填入
type fakeRows struct {
	users   []model.User
	winners []model.Winner
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.users)+len(r.winners) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.users != nil {
		fillUser(dest, r.users[r.idx])
	} else {
		fillWinner(dest, r.winners[r.idx])
	}
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
