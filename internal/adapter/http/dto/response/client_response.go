package response

import "taller_jaison/internal/domain/entities"

type VehicleResponse struct {
	ID         string `json:"id"`
	Plate      string `json:"plate"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Year       string `json:"year"`
	Color      string `json:"color"`
	Descriptor string `json:"descriptor"`
}

type ClientResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Phone  string            `json:"phone"`
	Email  string            `json:"email"`
	Garage []VehicleResponse `json:"garage"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		Color:      v.Color,
		Descriptor: v.Descriptor(),
	}
}

func FromClient(c entities.Client) ClientResponse {
	garage := make([]VehicleResponse, 0, len(c.Garage))
	for _, v := range c.Garage {
		garage = append(garage, FromVehicle(v))
	}
	return ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Garage: garage}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
