package notification

type MarkReadRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// SendRequest fans one notification out to several users.
type SendRequest struct {
	UserIDs []int64 `json:"user_ids" binding:"required,min=1"`
	Title   string  `json:"title" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Type    string  `json:"type"`
}
