package models

type Rider struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// Validate checks the fields an operator must supply when registering a
// new rider. The active flag is managed separately and not validated.
func (r Rider) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "rider name is required"}
	}
	if !isDigits(r.Phone) || len(r.Phone) != 10 {
		return &ValidationError{Field: "phone", Message: "rider phone must be a 10-digit number"}
	}
	return nil
}
