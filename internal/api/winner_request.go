// File: internal/api/winner_request.go
package api

// swagger:model api.WinnerRequest
type WinnerRequest struct {
	UserID      *int `json:"user_id" form:"user_id" validate:"required" example:"1"`
	PointsAtWin *int `json:"points_at_win" form:"points_at_win" validate:"required,min=-2147483648,max=2147483647" example:"42"`
}
