package dto

type NewTopicRequest struct {
	Title    string `json:"title" validate:"required,max=150"`
	Category string `json:"category" validate:"required,max=50"`
	Content  string `json:"content" validate:"required,max=10000"`
}

type ReplyRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}
