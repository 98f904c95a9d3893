package validation

// Failure describes one way an input violates the accepted-input contract.
type Failure struct {
	Code    string
	Message string
}

// Outcome is the result of validating a single input. Failures keep rule
// declaration order.
type Outcome struct {
	Failures []Failure
}

// IsValid reports whether no rule failed.
func (o Outcome) IsValid() bool {
	return len(o.Failures) == 0
}

// Codes returns the failure codes in order.
func (o Outcome) Codes() []string {
	codes := make([]string, 0, len(o.Failures))
	for _, f := range o.Failures {
		codes = append(codes, f.Code)
	}
	return codes
}

func single(code, message string) Outcome {
	return Outcome{Failures: []Failure{{Code: code, Message: message}}}
}
