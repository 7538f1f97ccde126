package entities

import "strings"

// ResolveOrCreateClient returns the selected client unchanged, or builds a new
// client with an empty garage and a freshly generated id from the draft.
func ResolveOrCreateClient(existing *Client, draft ClientDraft) Client {
	if existing != nil {
		return *existing
	}
	return Client{
		ID:     NewID(PrefixClient),
		Name:   strings.TrimSpace(draft.Name),
		Phone:  FormatPhone(draft.Phone),
		Email:  strings.TrimSpace(draft.Email),
		Garage: []Vehicle{},
	}
}

// ResolveOrCreateVehicle returns the selected vehicle unchanged alongside the
// client, or builds a new vehicle from the draft and appends it to the
// client's garage, returning the updated client.
//
// The caller must persist the returned client before persisting any order
// that references the vehicle: orders store ids, not embedded copies.
func ResolveOrCreateVehicle(client Client, existing *Vehicle, draft VehicleDraft) (Client, Vehicle) {
	if existing != nil {
		return client, *existing
	}
	v := Vehicle{
		ID:    NewID(PrefixVehicle),
		Plate: FormatPlate(draft.Plate),
		Brand: strings.TrimSpace(draft.Brand),
		Model: strings.TrimSpace(draft.Model),
		Year:  strings.TrimSpace(draft.Year),
		Color: strings.TrimSpace(draft.Color),
	}
	updated := client.Clone()
	updated.Garage = append(updated.Garage, v)
	return updated, v
}
