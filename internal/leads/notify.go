package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Notifier delivers an accepted lead somewhere a human will see it.
type Notifier interface {
	Notify(ctx context.Context, lead Lead) error
}

// LogNotifier writes each lead as a structured log entry.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, lead Lead) error {
	logger := n.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("lead received",
		zap.String("leadId", lead.ID),
		zap.String("kind", string(lead.Kind)),
		zap.String("name", lead.Name),
		zap.String("businessName", lead.BusinessName),
		zap.String("email", lead.Email),
		zap.String("phone", lead.Phone),
		zap.Int("messageLength", len(lead.Message)),
		zap.String("source", lead.Source),
		zap.Time("receivedAt", lead.ReceivedAt),
	)
	return nil
}

// PubSubNotifier publishes leads to a Pub/Sub topic.
type PubSubNotifier struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubNotifier constructs a Pub/Sub backed notifier.
func NewPubSubNotifier(topic *pubsub.Topic) (*PubSubNotifier, error) {
	if topic == nil {
		return nil, errors.New("pubsub lead notifier: topic is required")
	}
	return &PubSubNotifier{
		topic:   topic,
		marshal: json.Marshal,
	}, nil
}

// Notify publishes the lead and waits for the server-assigned message ID.
func (p *PubSubNotifier) Notify(ctx context.Context, lead Lead) error {
	if p == nil || p.topic == nil {
		return errors.New("pubsub lead notifier: not initialised")
	}

	data, err := p.marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	attrs := make(map[string]string)
	setAttr(attrs, "leadId", lead.ID)
	setAttr(attrs, "kind", string(lead.Kind))
	setAttr(attrs, "source", lead.Source)

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish lead: %w", err)
	}
	return nil
}

func setAttr(attrs map[string]string, key string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		attrs[key] = v
	}
}

// Multi notifies every wrapped notifier concurrently. All of them run even
// when one fails; the failures are joined.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, lead Lead) error {
	errs := make([]error, len(m))
	var g errgroup.Group
	for i, n := range m {
		if n == nil {
			continue
		}
		g.Go(func() error {
			errs[i] = n.Notify(ctx, lead)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
