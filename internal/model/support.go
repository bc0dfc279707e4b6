package model

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID         string `json:"id"`
	User       string `json:"user,omitempty"`
	Customer   string `json:"customer,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// DisplayUser resolves the requester label across feed shapes.
func (t SupportTicket) DisplayUser() string {
	if t.User != "" {
		return t.User
	}
	return t.Customer
}

// DisplaySubject resolves the subject label across feed shapes.
func (t SupportTicket) DisplaySubject() string {
	if t.Subject != "" {
		return t.Subject
	}
	return t.Title
}

// SupportOverride is a locally persisted patch applied on top of a fetched
// ticket to simulate backend state changes without a backend.
type SupportOverride struct {
	Status     string `json:"status,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
