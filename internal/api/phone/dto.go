package phone

import "SmartObjectAI/pkg/nlp"

type PhoneCommandRequest struct {
	Command string `json:"command" validate:"required"`
}

type PhoneCommandResponse struct {
	Success bool   `json:"success"`
	Intent  string `json:"intent"`
	Contact string `json:"contact,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

type BridgeStatusResponse struct {
	Connected bool `json:"connected"`
}

type ConnectRequest struct {
	IP   string `json:"ip"`
	Port string `json:"port"`
}

type ConnectResponse struct {
	Success bool   `json:"success"`
	Device  string `json:"device,omitempty"`
	Message string `json:"message,omitempty"`
}

type CreateContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=20"`
}

type ContactListResponse struct {
	Contacts []nlp.Contact `json:"contacts"`
}
