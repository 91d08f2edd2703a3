package models

// Place is a single geocoding result. Coordinates stay strings on the wire,
// as the geocoder returns them.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// LocationSelection is the point a user picked, either from a search
// result or from the device position.
type LocationSelection struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
