// Package models contains shared request/record types exchanged between
// the queue, the telemetry store, and the phase pipeline.
package models

import (
	"encoding/json"
	"fmt"
)

// MigrationRequest carries the optional per-job folder layout.
// All fields default from configuration when absent.
type MigrationRequest struct {
	ContainerName   string `json:"containerName,omitempty"`
	SourceFolder    string `json:"sourceFolder,omitempty"`
	WorkspaceFolder string `json:"workspaceFolder,omitempty"`
	OutputFolder    string `json:"outputFolder,omitempty"`
}

// JobMessage is the decoded body of a queue message.
type JobMessage struct {
	ProcessID        string            `json:"processId"`
	UserID           string            `json:"userId"`
	MigrationRequest *MigrationRequest `json:"migrationRequest,omitempty"`

	// Delivery metadata filled in by the queue store, not part of the
	// message body. FinalAttempt is true when the retry budget leaves no
	// delivery after this one: a retryable failure must then finalize
	// instead of releasing the message.
	DequeueCount int  `json:"-"`
	FinalAttempt bool `json:"-"`
}

// ParseJobMessage decodes and validates a queue message body.
func ParseJobMessage(body []byte) (*JobMessage, error) {
	var msg JobMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode job message: %w", err)
	}
	if msg.ProcessID == "" {
		return nil, fmt.Errorf("job message missing processId")
	}
	if msg.UserID == "" {
		return nil, fmt.Errorf("job message missing userId")
	}
	return &msg, nil
}
