package response

type RelaySuccessResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// RelayRejectedResponse is returned for invalid payloads (400).
type RelayRejectedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RelayFailureResponse is returned when SMTP delivery fails (500).
type RelayFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
