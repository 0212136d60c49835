package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"heatwave-api/internal/domain/entity"
	"heatwave-api/internal/domain/gateway/db"
	"heatwave-api/internal/infra/observability"
	"heatwave-api/pkg/log"
)

// AuditProcessor consumes prediction audit events from the queue and
// persists them. It implements the sqs.Handler interface.
type AuditProcessor struct {
	auditGateway db.AuditGateway
	metrics      *observability.Metrics
}

func NewAuditProcessor(auditGateway db.AuditGateway, metrics *observability.Metrics) *AuditProcessor {
	return &AuditProcessor{
		auditGateway: auditGateway,
		metrics:      metrics,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *AuditProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var audit entity.PredictionAudit
	if err := json.Unmarshal([]byte(*msg.Body), &audit); err != nil {
		p.metrics.AuditEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to unmarshal audit event body: %w", err)
	}

	if err := p.auditGateway.Save(audit); err != nil {
		p.metrics.AuditEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to persist audit event %s: %w", audit.ID, err)
	}

	p.metrics.AuditEvents.WithLabelValues("stored").Inc()
	log.Debugf("Stored prediction audit %s for city %s", audit.ID, audit.City)
	return nil
}
