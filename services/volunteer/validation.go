package volunteer

import (
	"fmt"
	"regexp"
	"strings"

	"anndann/models"

	"github.com/go-playground/validator/v10"
)

// ErrorKind is a machine-readable validation failure.
type ErrorKind string

const (
	MissingFields       ErrorKind = "MissingFields"
	InvalidPhoneFormat  ErrorKind = "InvalidPhoneFormat"
	InvalidPinFormat    ErrorKind = "InvalidPinFormat"
	InvalidAadharFormat ErrorKind = "InvalidAadharFormat"
	InvalidTimeSlot     ErrorKind = "InvalidTimeSlot"
	InvalidDaysFormat   ErrorKind = "InvalidDaysFormat"
)

// ValidationError rejects a registration before anything is persisted.
type ValidationError struct {
	Kind    ErrorKind
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
	pinPattern    = regexp.MustCompile(`^\d{6}$`)
	aadharPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}$`)
)

// formatCheck is one step of the ordered format validation.
type formatCheck struct {
	field   string
	tag     string
	kind    ErrorKind
	message string
	value   func(models.VolunteerRegistration) interface{}
}

var formatChecks = []formatCheck{
	{"phoneNumber", "phone10", InvalidPhoneFormat, "Phone number must be 10 digits",
		func(r models.VolunteerRegistration) interface{} { return r.PhoneNumber }},
	{"pinCode", "pin6", InvalidPinFormat, "Pin code must be 6 digits",
		func(r models.VolunteerRegistration) interface{} { return r.PinCode }},
	{"aadharId", "aadhar", InvalidAadharFormat, "Invalid Aadhar ID format. Use: xxxx-xxxx-xxxx",
		func(r models.VolunteerRegistration) interface{} { return r.AadharID }},
	{"timeSlot", "timeslot", InvalidTimeSlot, "Invalid time slot. Use: Morning, Afternoon, or Night",
		func(r models.VolunteerRegistration) interface{} { return r.TimeSlot }},
	{"days", "min=1,dive,day", InvalidDaysFormat, "Invalid days format. Use: M, T, W, Th, F, Sa, Su",
		func(r models.VolunteerRegistration) interface{} { return r.Days }},
}

// Validator checks registrations field by field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the registration-specific tags on a fresh
// go-playground validator.
func NewValidator() *Validator {
	v := validator.New()
	mustRegister(v, "phone10", patternFunc(phonePattern))
	mustRegister(v, "pin6", patternFunc(pinPattern))
	mustRegister(v, "aadhar", patternFunc(aadharPattern))
	mustRegister(v, "timeslot", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, slot := range models.TimeSlots {
			if s == string(slot) {
				return true
			}
		}
		return false
	})
	mustRegister(v, "day", func(fl validator.FieldLevel) bool {
		return IsDay(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate runs the presence check, reporting every missing field, and then
// the format checks in order, stopping at the first failure.
func (v *Validator) Validate(reg models.VolunteerRegistration) error {
	return v.check(reg, nil)
}

// check is Validate with a set of fields whose submitted value had the wrong
// type. A mistyped format field counts as present and fails its own format
// check; a mistyped free-text field has no usable value and is missing.
func (v *Validator) check(reg models.VolunteerRegistration, mistyped map[string]bool) error {
	var missing []string
	for _, name := range MissingFieldNames(reg) {
		if mistyped[name] && hasFormatCheck(name) {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return &ValidationError{
			Kind:    MissingFields,
			Fields:  missing,
			Message: fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		}
	}

	for _, check := range formatChecks {
		if mistyped[check.field] || v.validate.Var(check.value(reg), check.tag) != nil {
			return &ValidationError{
				Kind:    check.kind,
				Fields:  []string{check.field},
				Message: check.message,
			}
		}
	}
	return nil
}

func hasFormatCheck(field string) bool {
	for _, check := range formatChecks {
		if check.field == field {
			return true
		}
	}
	return false
}

// MissingFieldNames lists the required fields that are absent or empty, in
// their canonical order. An explicitly empty days list counts as present and
// is rejected by the format check instead.
func MissingFieldNames(reg models.VolunteerRegistration) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"fullName", reg.FullName == ""},
		{"phoneNumber", reg.PhoneNumber == ""},
		{"occupation", reg.Occupation == ""},
		{"address", reg.Address == ""},
		{"pinCode", reg.PinCode == ""},
		{"aadharId", reg.AadharID == ""},
		{"timeSlot", reg.TimeSlot == ""},
		{"days", reg.Days == nil},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// IsDay reports whether s is one of the accepted day codes.
func IsDay(s string) bool {
	for _, d := range models.Week {
		if s == string(d) {
			return true
		}
	}
	return false
}

// IsPhoneNumber reports whether s is exactly ten decimal digits.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

func patternFunc(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("volunteer: register %q validation: %v", tag, err))
	}
}
