// File: internal/api/user_request.go
package api

import "strings"

// UserRequest 用於建立與整筆更新使用者；points 省略時建立為 0，更新時保留原值
// age 與 points 受限於資料庫 INTEGER 範圍
// swagger:model api.UserRequest
type UserRequest struct {
	Name    *string `json:"name" form:"name" validate:"required,min=1,max=100" example:"Alice"`
	Age     *int    `json:"age" form:"age" validate:"required,min=-2147483648,max=2147483647" example:"30"`
	Address *string `json:"address" form:"address" validate:"required,min=1" example:"1 Main St"`
	Points  *int    `json:"points" form:"points" validate:"omitempty,min=-2147483648,max=2147483647" example:"0"`
}

// Trim 去除 name 與 address 前後空白，只有空白的值視為空字串
func (r *UserRequest) Trim() {
	for _, s := range []*string{r.Name, r.Address} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

// PointsOrZero 回傳 points，未提供時為 0
func (r UserRequest) PointsOrZero() int {
	if r.Points == nil {
		return 0
	}
	return *r.Points
}
