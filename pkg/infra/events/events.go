package events

import (
	"context"
	"time"
)

const (
	PublicationCreated = "publication.created"
	ContentGenerated   = "content.generated"
)

type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

//go:generate mockery --name=Exporter --dir=. --output=./mocks --filename=exporter_mock.go --case=underscore --with-expecter
type Exporter interface {
	Name() string
	Export(ctx context.Context, evt *Event) error
	Close()
}

type noopExporter struct{}

// NewNoopExporter drops every event; it stands in when no broker is configured.
func NewNoopExporter() Exporter {
	return noopExporter{}
}

func (noopExporter) Name() string { return "noop" }

func (noopExporter) Export(context.Context, *Event) error { return nil }

func (noopExporter) Close() {}
