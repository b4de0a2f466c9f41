package catalog

// Action maps a spoken keyword to the descriptor shown when it matches.
type Action struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

type Category struct {
	Tag        string   `json:"tag"`
	Name       string   `json:"name"`
	DeviceType string   `json:"device_type"`
	Commands   []string `json:"commands"`
	Actions    []Action `json:"actions"`
}
