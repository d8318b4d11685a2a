package core

import "github.com/google/uuid"

// GenerateID returns a fresh unique identifier for resources created
// without an explicit id.
func GenerateID() string {
	return uuid.NewString()
}
