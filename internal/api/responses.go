// File: internal/api/responses.go
package api

import "leaderboard/internal/model"

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"user not found"`
}

// swagger:model api.UserListResponse
type UserListResponse struct {
	Count    int          `json:"count" example:"1"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []model.User `json:"results"`
}

// swagger:model api.WinnerListResponse
type WinnerListResponse struct {
	Count    int            `json:"count" example:"1"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []model.Winner `json:"results"`
}

// ScoreGroupResponse 只用於文件，實際輸出為 leaderboard.ScoreGroups
// swagger:model api.ScoreGroupResponse
type ScoreGroupResponse struct {
	Names      []string `json:"names" example:"Alice,Bob"`
	AverageAge int      `json:"average_age" example:"27"`
}

// swagger:model api.UpdateWinnersResponse
type UpdateWinnersResponse struct {
	Status  string        `json:"status" example:"success"`
	Winner  *model.Winner `json:"winner,omitempty"`
	Message string        `json:"message,omitempty" example:"No winner declared due to a tie"`
}

// swagger:model api.ScoreValidationResponse
type ScoreValidationResponse struct {
	ValidationErrors FieldErrors `json:"validation_errors"`
}

// NewUserList 包裝成分頁形狀；目前不分頁，next / previous 恆為 null
func NewUserList(users []model.User) UserListResponse {
	if users == nil {
		users = []model.User{}
	}
	return UserListResponse{Count: len(users), Results: users}
}

func NewWinnerList(winners []model.Winner) WinnerListResponse {
	if winners == nil {
		winners = []model.Winner{}
	}
	return WinnerListResponse{Count: len(winners), Results: winners}
}
