package events

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}

// RegisteredTypes returns every registered EventType in ascending order
func RegisteredTypes() []EventType {
	types := make([]EventType, 0, len(typeToName))
	for et := range typeToName {
		types = append(types, et)
	}
	slices.Sort(types)
	return types
}

// ParseEventTypes resolves a comma-separated list of event names
// An empty list selects every registered type
func ParseEventTypes(list string) ([]EventType, error) {
	if strings.TrimSpace(list) == "" {
		return RegisteredTypes(), nil
	}
	var types []EventType
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		et, ok := GetEventType(name)
		if !ok {
			return nil, fmt.Errorf("unknown event %q", name)
		}
		if !slices.Contains(types, et) {
			types = append(types, et)
		}
	}
	return types, nil
}

// InitRegistry populates the registry with all game events
// Safe to call more than once
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventDirectionRequest", EventDirectionRequest)
		RegisterType("EventFoodSpawned", EventFoodSpawned)
		RegisterType("EventFoodEaten", EventFoodEaten)
		RegisterType("EventFoodExhausted", EventFoodExhausted)
		RegisterType("EventGameOver", EventGameOver)
		RegisterType("EventGameReset", EventGameReset)
	})
}
