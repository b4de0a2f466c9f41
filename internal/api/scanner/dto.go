package scanner

import "SmartObjectAI/pkg/catalog"

type DetectObjectRequest struct {
	Image string `json:"image" validate:"required"`
}

type DetectObjectResponse struct {
	Object     string   `json:"object"`
	Name       string   `json:"name"`
	DeviceType string   `json:"device_type"`
	Confidence int      `json:"confidence"`
	Commands   []string `json:"commands"`
	Source     string   `json:"source"`
	ImageURL   string   `json:"image_url,omitempty"`
}

type ExecuteCommandRequest struct {
	Object  string `json:"object" validate:"required"`
	Command string `json:"command"`
}

type ExecuteCommandResponse struct {
	Object   string `json:"object"`
	Command  string `json:"command"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Matched  bool   `json:"matched"`
	Executed bool   `json:"executed"`
}

type CategoryResponse struct {
	Tag        string           `json:"tag"`
	Name       string           `json:"name"`
	DeviceType string           `json:"device_type"`
	Commands   []string         `json:"commands"`
	Actions    []catalog.Action `json:"actions"`
}

type LiveFrameRequest struct {
	Image string `json:"image"`
}
