package main

import "fmt"

// Rejection codes shared by all intents. Codes are stable strings the
// client can branch on; messages are free-form.
const (
	codeInvalidInput  = "invalid-input"
	codeUnknownEntity = "unknown-entity"
	codeBlocked       = "blocked"
)

// GameError is a rejected intent, carrying the rejection class and a
// human-readable reason.
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func errInvalidInput(format string, v ...any) *GameError {
	return &GameError{Code: codeInvalidInput, Message: fmt.Sprintf(format, v...)}
}

func errUnknownEntity(id string) *GameError {
	return &GameError{Code: codeUnknownEntity, Message: "entity " + id + " not found"}
}

func errBlocked(message string) *GameError {
	return &GameError{Code: codeBlocked, Message: message}
}
