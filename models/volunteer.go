package models

import "time"

// TimeSlot is a coarse daily availability window.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "Morning"
	TimeSlotAfternoon TimeSlot = "Afternoon"
	TimeSlotNight     TimeSlot = "Night"
)

// TimeSlots lists the accepted time slots in display order.
var TimeSlots = []TimeSlot{TimeSlotMorning, TimeSlotAfternoon, TimeSlotNight}

// Day is a single weekday code.
type Day string

const (
	Monday    Day = "M"
	Tuesday   Day = "T"
	Wednesday Day = "W"
	Thursday  Day = "Th"
	Friday    Day = "F"
	Saturday  Day = "Sa"
	Sunday    Day = "Su"
)

var (
	// Week lists every day code in display order.
	Week     = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
	Weekend  = []Day{Saturday, Sunday}
)

// VolunteerRegistration is the payload accepted by POST /api/volunteers.
type VolunteerRegistration struct {
	FullName    string   `json:"fullName" bson:"fullName"`
	PhoneNumber string   `json:"phoneNumber" bson:"phoneNumber"`
	Occupation  string   `json:"occupation" bson:"occupation"`
	Address     string   `json:"address" bson:"address"`
	PinCode     string   `json:"pinCode" bson:"pinCode"`
	AadharID    string   `json:"aadharId" bson:"aadharId"`
	TimeSlot    string   `json:"timeSlot" bson:"timeSlot"`
	Days        []string `json:"days" bson:"days"`
}

// VolunteerRecord is a persisted registration.
type VolunteerRecord struct {
	ID                    string `json:"id" bson:"id"`
	VolunteerRegistration `bson:",inline"`
	CreatedAt             time.Time `json:"createdAt" bson:"createdAt"`
}

// VolunteerDraft is the in-progress registration held between wizard steps.
// A nil field has not been entered yet; a non-nil empty value has been
// entered and then erased.
type VolunteerDraft struct {
	FullName    *string  `json:"fullName,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Occupation  *string  `json:"occupation,omitempty"`
	Address     *string  `json:"address,omitempty"`
	PinCode     *string  `json:"pinCode,omitempty"`
	AadharID    *string  `json:"aadharId,omitempty"`
	TimeSlot    *string  `json:"timeSlot,omitempty"`
	Days        []string `json:"days"`
}

// Merge copies every field set in partial over d. Fields absent from
// partial are left untouched.
func (d VolunteerDraft) Merge(partial VolunteerDraft) VolunteerDraft {
	if partial.FullName != nil {
		d.FullName = partial.FullName
	}
	if partial.PhoneNumber != nil {
		d.PhoneNumber = partial.PhoneNumber
	}
	if partial.Occupation != nil {
		d.Occupation = partial.Occupation
	}
	if partial.Address != nil {
		d.Address = partial.Address
	}
	if partial.PinCode != nil {
		d.PinCode = partial.PinCode
	}
	if partial.AadharID != nil {
		d.AadharID = partial.AadharID
	}
	if partial.TimeSlot != nil {
		d.TimeSlot = partial.TimeSlot
	}
	if partial.Days != nil {
		d.Days = cloneDays(partial.Days)
	}
	return d
}

// Clone returns a deep copy of d.
func (d VolunteerDraft) Clone() VolunteerDraft {
	return VolunteerDraft{
		FullName:    clonePtr(d.FullName),
		PhoneNumber: clonePtr(d.PhoneNumber),
		Occupation:  clonePtr(d.Occupation),
		Address:     clonePtr(d.Address),
		PinCode:     clonePtr(d.PinCode),
		AadharID:    clonePtr(d.AadharID),
		TimeSlot:    clonePtr(d.TimeSlot),
		Days:        cloneDays(d.Days),
	}
}

// IsEmpty reports whether no field has been set.
func (d VolunteerDraft) IsEmpty() bool {
	return d.FullName == nil && d.PhoneNumber == nil && d.Occupation == nil &&
		d.Address == nil && d.PinCode == nil && d.AadharID == nil &&
		d.TimeSlot == nil && d.Days == nil
}

// Registration flattens the draft into a submission payload. Absent fields
// become zero values and are rejected by server-side validation.
func (d VolunteerDraft) Registration() VolunteerRegistration {
	return VolunteerRegistration{
		FullName:    deref(d.FullName),
		PhoneNumber: deref(d.PhoneNumber),
		Occupation:  deref(d.Occupation),
		Address:     deref(d.Address),
		PinCode:     deref(d.PinCode),
		AadharID:    deref(d.AadharID),
		TimeSlot:    deref(d.TimeSlot),
		Days:        d.Days,
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(*s)
}

func cloneDays(days []string) []string {
	if days == nil {
		return nil
	}
	return append([]string{}, days...)
}
