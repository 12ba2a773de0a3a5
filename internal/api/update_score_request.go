// File: internal/api/update_score_request.go
package api

// swagger:model api.UpdateScoreRequest
type UpdateScoreRequest struct {
	Change *int `json:"change" form:"change" validate:"required,min=-2147483648,max=2147483647" example:"5"`
}
