package request

// ActiveRequest needs a pointer so an explicit false is told apart from a
// missing field.
type ActiveRequest struct {
	Active *bool `json:"ativo" binding:"required"`
}
