package coach

// ChatOutput for POST /coach/chat
type ChatOutput struct {
	Body ChatReply
}

// ChatReply is the coach's answer.
type ChatReply struct {
	Reply string `json:"reply" doc:"Coach reply" example:"Yes, a gentle pull is expected this early."`
}
