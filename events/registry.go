package events

var typeToName = map[EventType]string{
	EventClick:        "Click",
	EventWin:          "Win",
	EventReset:        "Reset",
	EventConfigChange: "ConfigChange",
}

// String returns the registered event name
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for et, n := range typeToName {
		if n == name {
			return et, true
		}
	}
	return 0, false
}
