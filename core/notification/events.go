package notification

// Event keys for the recruiting pipeline events that can trigger a
// notification. Keys are stable API identifiers; renaming one breaks stored
// templates.
const (
	EventApplicationReceived = "application.received"
	EventApplicationMoved    = "application.moved"
	EventApplicationRejected = "application.rejected"
	EventInterviewScheduled  = "interview.scheduled"
	EventInterviewCanceled   = "interview.canceled"
	EventInterviewReminder   = "interview.reminder"
	EventOfferSent           = "offer.sent"
	EventOfferAccepted       = "offer.accepted"
	EventBottleneckDetected  = "bottleneck.detected"
)

var eventKeys = map[string]struct{}{
	EventApplicationReceived: {},
	EventApplicationMoved:    {},
	EventApplicationRejected: {},
	EventInterviewScheduled:  {},
	EventInterviewCanceled:   {},
	EventInterviewReminder:   {},
	EventOfferSent:           {},
	EventOfferAccepted:       {},
	EventBottleneckDetected:  {},
}

// KnownEventKey reports whether key names a pipeline event this module can
// render notifications for.
func KnownEventKey(key string) bool {
	_, ok := eventKeys[key]
	return ok
}

// EventKeys returns the full catalog, for settings screens and validation.
func EventKeys() []string {
	keys := make([]string, 0, len(eventKeys))
	for k := range eventKeys {
		keys = append(keys, k)
	}
	return keys
}
