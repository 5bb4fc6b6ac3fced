package events

import "reflect"

// Event is the interface that all session events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// GetSessionID extracts the SessionID field from an event, or "" if it has none.
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
