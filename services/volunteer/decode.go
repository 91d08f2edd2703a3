package volunteer

import (
	"encoding/json"
	"errors"

	"anndann/models"
)

// ErrMalformedBody is returned when a registration body is not a JSON object.
var ErrMalformedBody = errors.New("registration body is not a JSON object")

// ValidateJSON decodes a raw registration body and validates it. A field
// holding the wrong JSON type does not fail the whole body: it is reported by
// that field's own check, so the ordering of Validate still applies.
func (v *Validator) ValidateJSON(body []byte) (models.VolunteerRegistration, error) {
	reg, mistyped, err := decodeRegistration(body)
	if err != nil {
		return reg, err
	}
	return reg, v.check(reg, mistyped)
}

// decodeRegistration reads the known fields out of a JSON object. JSON null,
// false, 0 and "" leave a field unset. Fields whose value could not be
// decoded into the registration are returned in mistyped.
func decodeRegistration(body []byte) (models.VolunteerRegistration, map[string]bool, error) {
	var reg models.VolunteerRegistration

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return reg, nil, ErrMalformedBody
	}

	mistyped := make(map[string]bool)
	for name, dst := range map[string]*string{
		"fullName":    &reg.FullName,
		"phoneNumber": &reg.PhoneNumber,
		"occupation":  &reg.Occupation,
		"address":     &reg.Address,
		"pinCode":     &reg.PinCode,
		"aadharId":    &reg.AadharID,
		"timeSlot":    &reg.TimeSlot,
	} {
		msg, ok := raw[name]
		if !ok || isUnset(msg) {
			continue
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			mistyped[name] = true
		}
	}

	if msg, ok := raw["days"]; ok && !isUnset(msg) {
		if err := json.Unmarshal(msg, &reg.Days); err != nil {
			reg.Days = nil
			mistyped["days"] = true
		}
	}
	return reg, mistyped, nil
}

func isUnset(msg json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(msg, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}
