package webhook

const (
	// ObjectPage is the only event object type this service relays.
	ObjectPage = "page"
	// EventReceived is the acknowledgement body for accepted events.
	EventReceived = "EVENT_RECEIVED"
	// FallbackMessage is sent to the sender when the AI backend cannot answer.
	FallbackMessage = "Sorry, I'm having trouble thinking right now. Please try again in a moment."

	modeSubscribe = "subscribe"
)

// EventPayload is the body of a webhook event notification.
type EventPayload struct {
	// Object is the subscription object type, "page" for page messaging events.
	Object string `json:"object" validate:"required"`
	// Entry holds one item per batched page event.
	Entry []Entry `json:"entry" validate:"required,dive"`
}

// Entry is a single page event batch.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single message sent to the page.
type MessagingEvent struct {
	Sender    Party           `json:"sender"`
	Recipient Party           `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *InboundMessage `json:"message,omitempty"`
}

// Party identifies a sender or recipient by its page-scoped ID.
type Party struct {
	ID string `json:"id"`
}

// InboundMessage is the message part of a messaging event. Text is empty for attachments.
type InboundMessage struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

// firstTextEvent returns the entry's first messaging event when it carries message text.
func (e Entry) firstTextEvent() (MessagingEvent, bool) {
	if len(e.Messaging) == 0 {
		return MessagingEvent{}, false
	}
	event := e.Messaging[0]
	if event.Message == nil || event.Message.Text == "" {
		return MessagingEvent{}, false
	}
	return event, true
}
