package domain

import "strings"

const (
	RoomGeneral         = "general"
	RoomDriverLocations = "driver-locations"

	EventDriverLocation = "driver.location"

	orderEventPrefix  = "order."
	driverEventPrefix = "driver."
)

var (
	orderIDKeys         = []string{"orderId", "order_id"}
	driverIDKeys        = []string{"driverId", "driver_id"}
	orderOrGenericKeys  = []string{"orderId", "order_id", "id"}
	driverOrGenericKeys = []string{"driverId", "driver_id", "id"}
)

func OrderRoom(orderID ID) string { return "order-" + orderID.String() }

func DriverRoom(driverID ID) string { return "driver-" + driverID.String() }

// DeriveRoom picks the room an event is broadcast to when the caller did not name one.
// It is total: every input yields a room.
func DeriveRoom(explicitRoom *string, eventName string, payload map[string]any) string {
	if explicitRoom != nil && *explicitRoom != "" {
		return *explicitRoom
	}
	if id, ok := lookupID(payload, orderIDKeys...); ok {
		return OrderRoom(id)
	}
	if id, ok := lookupID(payload, driverIDKeys...); ok {
		return DriverRoom(id)
	}
	if strings.HasPrefix(eventName, orderEventPrefix) {
		if id, ok := lookupID(payload, orderOrGenericKeys...); ok {
			return OrderRoom(id)
		}
	}
	if strings.HasPrefix(eventName, driverEventPrefix) {
		if id, ok := lookupID(payload, driverOrGenericKeys...); ok {
			return DriverRoom(id)
		}
	}
	if eventName == EventDriverLocation {
		return RoomDriverLocations
	}
	return RoomGeneral
}

// HasOrderID reports whether the payload names an order.
func HasOrderID(payload map[string]any) bool {
	_, ok := lookupID(payload, orderIDKeys...)
	return ok
}

// HasDriverID reports whether the payload names a driver.
func HasDriverID(payload map[string]any) bool {
	_, ok := lookupID(payload, driverIDKeys...)
	return ok
}

func lookupID(payload map[string]any, keys ...string) (ID, bool) {
	for _, k := range keys {
		if v, ok := payload[k]; ok {
			if id, ok := IDFromValue(v); ok {
				return id, true
			}
		}
	}
	return ID{}, false
}
