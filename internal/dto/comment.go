package dto

type AddCommentRequest struct {
	Text string `form:"text" binding:"required"`
}
