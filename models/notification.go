package models

// VolunteerRegisteredPayload is the background-task payload emitted after a
// registration is stored. Identity documents and phone numbers stay out of it.
type VolunteerRegisteredPayload struct {
	VolunteerID string   `json:"volunteerId"`
	FullName    string   `json:"fullName"`
	TimeSlot    string   `json:"timeSlot"`
	Days        []string `json:"days"`
}
