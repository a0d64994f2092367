package models

// StaffMember is a published team member entry managed by the back office.
// It is catalog content, not a login account — see [User] for accounts.
type StaffMember struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	JobTitle string     `json:"job_title,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	WhatsApp string     `json:"whatsapp,omitempty"`
	Email    string     `json:"email,omitempty"`
	Status   UserStatus `json:"status"`
	Position int        `json:"position"`
}
