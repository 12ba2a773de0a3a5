// File: internal/model/user.go
package model

type User struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Age     int    `db:"age" json:"age"`
	Address string `db:"address" json:"address"`
	Points  int    `db:"points" json:"points"`
}
