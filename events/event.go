package events

import "reflect"

// Event is the interface that all game events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// GetSessionID extracts the SessionID field from any event that carries one.
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
