package uid

import "github.com/google/uuid"

// GenerateGameID returns a fresh identifier for one game of an engine.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateViewerID identifies a spectator connection.
func GenerateViewerID() string {
	return "viewer-" + uuid.NewString()[:8]
}
