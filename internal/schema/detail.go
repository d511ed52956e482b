package schema

import (
	"encoding/json"
	"fmt"

	"lyra/internal/models"
)

type rawRocket struct {
	ID          *string           `json:"id" validate:"required,min=1"`
	Name        *string           `json:"name" validate:"required,min=1"`
	Type        *string           `json:"type"`
	Description *string           `json:"description"`
	Height      *models.Dimension `json:"height"`
	Diameter    *models.Dimension `json:"diameter"`
}

type rawLaunchpad struct {
	ID              *string  `json:"id" validate:"required,min=1"`
	Name            *string  `json:"name" validate:"required,min=1"`
	FullName        *string  `json:"full_name"`
	Locality        *string  `json:"locality"`
	Region          *string  `json:"region"`
	Timezone        *string  `json:"timezone"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LaunchAttempts  *int     `json:"launch_attempts"`
	LaunchSuccesses *int     `json:"launch_successes"`
	Status          *string  `json:"status"`
}

// ParseRocketDetail validates and coerces a raw rocket record.
func ParseRocketDetail(data []byte) (*models.RocketDetail, *ValidationError) {
	var raw rawRocket
	msgs, fatal := decodeRecord(data, &raw)
	if fatal {
		return nil, &ValidationError{Entity: "rocket", Errors: msgs}
	}

	if err := validate.Struct(raw); err != nil {
		msgs = append(msgs, translate(err)...)
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Entity: "rocket", Errors: msgs}
	}

	return &models.RocketDetail{
		ID:          *raw.ID,
		Name:        *raw.Name,
		Type:        stringOrEmpty(raw.Type),
		Description: stringOrEmpty(raw.Description),
		Height:      raw.Height,
		Diameter:    raw.Diameter,
	}, nil
}

// ParseLaunchpadDetail validates and coerces a raw launchpad record.
func ParseLaunchpadDetail(data []byte) (*models.LaunchpadDetail, *ValidationError) {
	var raw rawLaunchpad
	msgs, fatal := decodeRecord(data, &raw)
	if fatal {
		return nil, &ValidationError{Entity: "launchpad", Errors: msgs}
	}

	if err := validate.Struct(raw); err != nil {
		msgs = append(msgs, translate(err)...)
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Entity: "launchpad", Errors: msgs}
	}

	pad := &models.LaunchpadDetail{
		ID:              *raw.ID,
		Name:            *raw.Name,
		FullName:        stringOrEmpty(raw.FullName),
		Locality:        stringOrEmpty(raw.Locality),
		Region:          stringOrEmpty(raw.Region),
		Timezone:        stringOrEmpty(raw.Timezone),
		Latitude:        raw.Latitude,
		Longitude:       raw.Longitude,
		LaunchAttempts:  raw.LaunchAttempts,
		LaunchSuccesses: raw.LaunchSuccesses,
		Status:          stringOrEmpty(raw.Status),
	}
	if pad.FullName == "" {
		pad.FullName = pad.Name
	}
	return pad, nil
}

// decodeRecord unmarshals into dest. A field type mismatch is survivable
// (decoding continues past it), so it comes back as a message with
// fatal=false; a record that is not JSON at all is fatal.
func decodeRecord(data []byte, dest any) (msgs []string, fatal bool) {
	if err := json.Unmarshal(data, dest); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return []string{fmt.Sprintf("%s has wrong type (expected %s)", typeErr.Field, typeErr.Type)}, false
		}
		return []string{"record is not valid JSON: " + err.Error()}, true
	}
	return nil, false
}
