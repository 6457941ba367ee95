package request

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}
