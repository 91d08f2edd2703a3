package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"anndann/models"
	"anndann/services/volunteer"
)

// DetailField names an input on the personal details step.
type DetailField string

const (
	FieldFullName    DetailField = "fullName"
	FieldPhoneNumber DetailField = "phoneNumber"
	FieldOccupation  DetailField = "occupation"
	FieldAddress     DetailField = "address"
	FieldPinCode     DetailField = "pinCode"
	FieldAadharID    DetailField = "aadharId"
)

// DetailFields lists the inputs in form order.
var DetailFields = []DetailField{
	FieldFullName, FieldPhoneNumber, FieldOccupation, FieldAddress, FieldPinCode, FieldAadharID,
}

var fieldLabels = map[DetailField]string{
	FieldFullName:    "Full Name",
	FieldPhoneNumber: "Phone Number",
	FieldOccupation:  "Occupation",
	FieldAddress:     "Address",
	FieldPinCode:     "Pin Code",
	FieldAadharID:    "Aadhar ID",
}

// Label returns the form label of f.
func (f DetailField) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

const msgPhoneDigits = "Phone number must be 10 digits"

// DetailsStep is the personal details form. Every change is written through
// to the draft so that a reload does not lose progress.
type DetailsStep struct {
	mu      sync.Mutex
	draft   DraftStore
	values  map[DetailField]string
	state   State
	message string
}

// NewDetailsStep hydrates the form from the draft.
func NewDetailsStep(ctx context.Context, draft DraftStore) *DetailsStep {
	d := draft.Get(ctx)
	s := &DetailsStep{draft: draft, values: make(map[DetailField]string), state: StateEditing}
	for _, f := range DetailFields {
		if p := fieldOf(&d, f); p != nil && *p != nil {
			s.values[f] = **p
		}
	}
	return s
}

// Set updates one field and writes it through to the draft. Editing a field
// dismisses any inline error.
func (s *DetailsStep) Set(ctx context.Context, field DetailField, value string) error {
	var partial models.VolunteerDraft
	p := fieldOf(&partial, field)
	if p == nil {
		return fmt.Errorf("unknown field %q", field)
	}
	*p = models.StringPtr(value)

	s.mu.Lock()
	s.values[field] = value
	s.state = StateEditing
	s.message = ""
	s.mu.Unlock()

	return s.draft.Merge(ctx, partial)
}

func (s *DetailsStep) Value(field DetailField) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[field]
}

// Next checks the required fields and the phone format locally. It never
// calls the server. It returns true when the wizard may advance.
func (s *DetailsStep) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var missing []string
	for _, f := range DetailFields {
		if strings.TrimSpace(s.values[f]) == "" {
			missing = append(missing, f.Label())
		}
	}
	switch {
	case len(missing) > 0:
		s.state = StateError
		s.message = "Please fill in: " + strings.Join(missing, ", ")
	case !volunteer.IsPhoneNumber(s.values[FieldPhoneNumber]):
		s.state = StateError
		s.message = msgPhoneDigits
	default:
		s.state = StateSuccess
		s.message = ""
	}
	return s.state == StateSuccess
}

// Acknowledge dismisses an error.
func (s *DetailsStep) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateError {
		s.state = StateEditing
		s.message = ""
	}
}

func (s *DetailsStep) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DetailsStep) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// fieldOf returns the draft slot backing f, or nil for an unknown field.
func fieldOf(d *models.VolunteerDraft, f DetailField) **string {
	switch f {
	case FieldFullName:
		return &d.FullName
	case FieldPhoneNumber:
		return &d.PhoneNumber
	case FieldOccupation:
		return &d.Occupation
	case FieldAddress:
		return &d.Address
	case FieldPinCode:
		return &d.PinCode
	case FieldAadharID:
		return &d.AadharID
	}
	return nil
}
