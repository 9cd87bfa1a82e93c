package suppliers

// Supplier is one vendor contact record.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	Notes         string `json:"notes"`
}

func (s Supplier) RecordID() string { return s.ID }

// Draft is the add/edit form payload. Company name, contact person, email
// and phone are mandatory; the rest is optional.
type Draft struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	Notes         string `json:"notes"`
}
