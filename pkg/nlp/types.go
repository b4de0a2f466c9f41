package nlp

type Intent string

const (
	IntentCall        Intent = "call"
	IntentMessage     Intent = "message"
	IntentSendMessage Intent = "send_message"
	IntentUnknown     Intent = "unknown"
)

type Contact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type PhoneIntent struct {
	Intent  Intent  `json:"intent"`
	Contact Contact `json:"contact"`
	Message string  `json:"message,omitempty"`
}
