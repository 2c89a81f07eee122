package contact

// SubmitDTO is the public inquiry payload.
type SubmitDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ReplyDTO is the owner's reply to a stored inquiry.
type ReplyDTO struct {
	ReplyMessage string `json:"replyMessage"`
}
