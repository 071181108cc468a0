package form

// Status is the submission state of a form.
type Status int

const (
	// StatusIdle means nothing has been submitted yet.
	StatusIdle Status = iota
	// StatusSubmitting means a request is in flight.
	StatusSubmitting
	// StatusSuccess means the last submission was accepted.
	StatusSuccess
	// StatusError means the last submission failed.
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Submission tracks one form's submit lifecycle. Fields holds inline
// validation messages; Message holds the banner text.
type Submission struct {
	Status  Status
	Message string
	Fields  *FieldErrors
}

// Reject records validation failures. The form stays idle because nothing
// was sent.
func (s *Submission) Reject(errs *FieldErrors) {
	s.Status = StatusIdle
	s.Message = ""
	s.Fields = errs
}

// Begin marks the form as submitting. It reports false when a request is
// already in flight.
func (s *Submission) Begin() bool {
	if s.Status == StatusSubmitting {
		return false
	}
	s.Status = StatusSubmitting
	s.Message = ""
	s.Fields = nil
	return true
}

// Succeed records an accepted submission.
func (s *Submission) Succeed(msg string) {
	s.Status = StatusSuccess
	s.Message = msg
}

// Fail records a rejected or undelivered submission.
func (s *Submission) Fail(msg string) {
	s.Status = StatusError
	s.Message = msg
}

// Reset returns to idle.
func (s *Submission) Reset() {
	*s = Submission{}
}
