package main

import (
	"encoding/json"
	"errors"

	"github.com/dungeonworks/sightline/internal/protocol"
)

// IntentRouter decodes client intents, runs them through the engine and
// broadcasts whatever patches come back. Rejections are logged, never
// broadcast; the client resyncs from patches it does receive.
type IntentRouter struct {
	engine      SightEngine
	broadcaster Broadcaster
	logger      Logger
}

func NewIntentRouter(engine SightEngine, broadcaster Broadcaster, logger Logger) *IntentRouter {
	return &IntentRouter{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// HandleMessage processes one raw websocket message from a client.
func (r *IntentRouter) HandleMessage(session string, data []byte) {
	var envelope protocol.IntentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		r.logger.Printf("session %s sent malformed intent: %v", session, err)
		return
	}

	var err error
	switch envelope.Type {
	case "requestMove":
		err = r.handleMove(envelope.Payload)
	case "requestSetTarget":
		err = r.handleSetTarget(envelope.Payload)
	case "requestToggleWall":
		err = r.handleToggleWall(envelope.Payload)
	case "requestConfigure":
		err = r.handleConfigure(envelope.Payload)
	default:
		r.logger.Printf("session %s sent unknown intent type %q", session, envelope.Type)
		return
	}

	if err != nil {
		var gameErr *GameError
		if errors.As(err, &gameErr) {
			r.logger.Printf("session %s intent %s rejected: %v", session, envelope.Type, gameErr)
		} else {
			r.logger.Printf("session %s intent %s failed: %v", session, envelope.Type, err)
		}
	}
}

func (r *IntentRouter) handleMove(payload json.RawMessage) error {
	var req protocol.RequestMove
	if err := json.Unmarshal(payload, &req); err != nil {
		return errInvalidInput("malformed move payload")
	}
	result, err := r.engine.ProcessMove(req)
	if err != nil {
		return err
	}
	r.broadcaster.BroadcastEvent("entityUpdated", result.EntityUpdated)
	r.broadcaster.BroadcastEvent("visibleTilesChanged", result.VisibleTiles)
	r.broadcaster.BroadcastEvent("pathChanged", result.Path)
	return nil
}

func (r *IntentRouter) handleSetTarget(payload json.RawMessage) error {
	var req protocol.RequestSetTarget
	if err := json.Unmarshal(payload, &req); err != nil {
		return errInvalidInput("malformed target payload")
	}
	result, err := r.engine.ProcessSetTarget(req)
	if err != nil {
		return err
	}
	r.broadcaster.BroadcastEvent("pathChanged", result.Path)
	return nil
}

func (r *IntentRouter) handleToggleWall(payload json.RawMessage) error {
	var req protocol.RequestToggleWall
	if err := json.Unmarshal(payload, &req); err != nil {
		return errInvalidInput("malformed wall payload")
	}
	result, err := r.engine.ProcessToggleWall(req)
	if err != nil {
		return err
	}
	r.broadcaster.BroadcastEvent("wallToggled", result.WallToggled)
	r.broadcaster.BroadcastEvent("visibleTilesChanged", result.VisibleTiles)
	r.broadcaster.BroadcastEvent("pathChanged", result.Path)
	return nil
}

func (r *IntentRouter) handleConfigure(payload json.RawMessage) error {
	var req protocol.RequestConfigure
	if err := json.Unmarshal(payload, &req); err != nil {
		return errInvalidInput("malformed configure payload")
	}
	result, err := r.engine.ProcessConfigure(req)
	if err != nil {
		return err
	}
	r.broadcaster.BroadcastEvent("configChanged", result.Config)
	r.broadcaster.BroadcastEvent("visibleTilesChanged", result.VisibleTiles)
	r.broadcaster.BroadcastEvent("pathChanged", result.Path)
	return nil
}
