package models

// Customer is the contact snapshot captured at checkout. Orders copy
// these fields verbatim and never read them back from a profile.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ValidationError reports a recoverable input problem with a message
// suitable for showing directly to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate enforces the checkout preconditions: callers must run this
// before handing the customer to the order factory.
func (c Customer) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "customer name is required"}
	}
	if !isDigits(c.Phone) || len(c.Phone) != 10 {
		return &ValidationError{Field: "phone", Message: "phone must be a 10-digit number"}
	}
	if len(c.Address) < 10 {
		return &ValidationError{Field: "address", Message: "address must be at least 10 characters"}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
