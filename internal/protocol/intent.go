package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RequestMove struct {
	EntityID string `json:"entityId"`
	DX       int    `json:"dx"`
	DY       int    `json:"dy"`
}

type RequestSetTarget struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RequestToggleWall struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RequestConfigure struct {
	Shape           *string `json:"shape,omitempty"`
	Radius          *int    `json:"radius,omitempty"`
	CircleDist      *bool   `json:"circleDist,omitempty"`
	BoundPad        *int    `json:"boundPad,omitempty"`
	ExploreLimit    *int    `json:"exploreLimit,omitempty"`
	FallbackClosest *bool   `json:"fallbackClosest,omitempty"`
}
