package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// Sentinel errors returned by RecordSource implementations.
var (
	// ErrRecordsNotFound indicates the records input does not exist.
	ErrRecordsNotFound = errors.New("records not found")

	// ErrInvalidRecord indicates the records input is malformed or references
	// unknown departments or training types.
	ErrInvalidRecord = errors.New("invalid record")
)

// RecordSource defines the driven port for loading training records.
// Load returns ErrRecordsNotFound if the input does not exist and
// ErrInvalidRecord if it cannot be validated.
type RecordSource interface {
	Load(ctx context.Context) (model.Roster, error)
}
