package prescription

// PrescriptionGetOutput for GET /prescription
type PrescriptionGetOutput struct {
	Body Prescription
}
