package chat

type CreateThreadRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateMessageRequest struct {
	Body     string             `json:"body"`
	ParentID string             `json:"parent_id" binding:"omitempty,uuid"`
	Poll     *CreatePollRequest `json:"poll"`
}

type CreatePollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2"`
}

type ToggleVoteRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

type ThreadResponse struct {
	ID       string `json:"id"`
	OrgID    string `json:"org_id"`
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
}

type MessageResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	ParentID string `json:"parent_id,omitempty"`
	AuthorID string `json:"author_id"`
	Body     string `json:"body,omitempty"`
	Poll     *Poll  `json:"poll,omitempty"`
}
