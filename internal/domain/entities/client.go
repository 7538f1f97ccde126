package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// Vehicle belongs to exactly one client's garage.
type Vehicle struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
}

// Descriptor renders "<brand> <model> (<year>)".
func (v Vehicle) Descriptor() string {
	return fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Year)
}

// Client is a shop customer. Garage keeps the owned vehicles in registration order.
type Client struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Email  string    `json:"email"`
	Garage []Vehicle `json:"garage"`
}

func (c Client) FindVehicle(id string) (Vehicle, bool) {
	for _, v := range c.Garage {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// Clone returns a copy that does not share the garage backing array.
func (c Client) Clone() Client {
	out := c
	if c.Garage != nil {
		out.Garage = make([]Vehicle, len(c.Garage))
		copy(out.Garage, c.Garage)
	}
	return out
}

// ClientDraft carries the intake form fields for a client not yet registered.
type ClientDraft struct {
	Name  string
	Phone string
	Email string
}

func (d ClientDraft) IsEmpty() bool {
	return strings.TrimSpace(d.Name) == ""
}

// VehicleDraft carries the intake form fields for a vehicle not yet registered.
type VehicleDraft struct {
	Plate string
	Brand string
	Model string
	Year  string
	Color string
}

func (d VehicleDraft) IsEmpty() bool {
	return strings.TrimSpace(d.Plate) == ""
}

// FormatPlate normalizes a plate to upper-case alphanumerics, at most six,
// with a dash after the third one (ABC-123).
func FormatPlate(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	v := b.String()
	if len(v) > 6 {
		v = v[:6]
	}
	if len(v) > 3 {
		v = v[:3] + "-" + v[3:]
	}
	return v
}

// FormatPhone keeps at most ten digits and renders them as (787) 555-1234
// once more than six digits are present.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	v := b.String()
	if len(v) > 10 {
		v = v[:10]
	}
	if len(v) > 6 {
		return fmt.Sprintf("(%s) %s-%s", v[:3], v[3:6], v[6:])
	}
	return v
}
