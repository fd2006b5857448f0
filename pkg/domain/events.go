package domain

import "time"

// SpaceEvent is emitted when a space is registered.
type SpaceEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SpaceID   string    `json:"space_id"`
	Replaced  bool      `json:"replaced,omitempty"`
	Via       string    `json:"via,omitempty"`
}

// ConvertEvent is emitted after a coordinate conversion.
type ConvertEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Direct    bool      `json:"direct,omitempty"`
	Adapted   bool      `json:"adapted,omitempty"`
}

// GamutEvent is emitted after a gamut mapping operation.
type GamutEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SpaceID   string    `json:"space_id"`
	Method    string    `json:"method"`
	Mapped    bool      `json:"mapped"`
}

// ParseEvent is emitted after a successful parse.
type ParseEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	SpaceID   string    `json:"space_id"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// invoked synchronously on the calling goroutine; nil hooks are skipped.
type LifecycleHooks struct {
	OnSpaceDefined func(*SpaceEvent)
	OnConvert      func(*ConvertEvent)
	OnGamutMapped  func(*GamutEvent)
	OnParse        func(*ParseEvent)
}
