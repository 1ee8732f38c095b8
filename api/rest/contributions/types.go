package contributions

// SubmitResponse acknowledges a contribution in the reader's language
type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
