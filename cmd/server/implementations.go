package main

import (
	"encoding/json"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dungeonworks/sightline/internal/protocol"
	"github.com/dungeonworks/sightline/internal/ws"
)

// BroadcasterImpl implements Broadcaster using the WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
	logger   Logger
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator, logger Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
		logger:   logger,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	envelope := protocol.PatchEnvelope{
		Sequence: b.sequence.Next(),
		Type:     eventType,
		Payload:  payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		b.logger.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(data)
}

// LogrusLogger implements Logger over a structured logrus entry
type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogger(entry *logrus.Entry) *LogrusLogger {
	return &LogrusLogger{entry: entry}
}

func (l *LogrusLogger) Printf(format string, v ...any) {
	l.entry.Infof(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using an atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}
