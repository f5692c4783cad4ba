package coach

// ChatInput for POST /coach/chat
type ChatInput struct {
	TZ   string `query:"tz" maxLength:"64" doc:"IANA time zone used to pick today's prescription" example:"Europe/Helsinki"`
	Body struct {
		Message string `json:"message" minLength:"1" maxLength:"2000" required:"true" doc:"User message" example:"Is it normal to feel a pull on day 3?"`
	}
}
