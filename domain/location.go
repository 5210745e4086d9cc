package domain

// LocationUpdate is a driver position sent over the realtime transport.
type LocationUpdate struct {
	OrderID   ID       `json:"orderId" validate:"required"`
	DriverID  ID       `json:"driverId" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// LocationBroadcast is pushed to the order room.
type LocationBroadcast struct {
	OrderID   ID      `json:"orderId"`
	DriverID  ID      `json:"driverId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// RelayPayload is the body forwarded to the external persistence endpoint.
type RelayPayload struct {
	DriverID  ID      `json:"driver_id"`
	OrderID   ID      `json:"order_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationResult struct {
	Success bool   `json:"success"`
	Room    string `json:"room,omitempty"`
	Error   string `json:"error,omitempty"`
}
