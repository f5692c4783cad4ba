package prescription

// PrescriptionGetInput for GET /prescription
type PrescriptionGetInput struct {
	Date string `query:"date" format:"date" doc:"Calendar date, defaults to today in tz" example:"2024-01-17"`
	TZ   string `query:"tz"   maxLength:"64" doc:"IANA time zone, defaults to the server zone" example:"Europe/Helsinki"`
}
