package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"heatwave-api/pkg/resource"
)

// NewSqsClient creates an SQS client, honoring the LocalStack endpoint when configured.
func NewSqsClient(cfg aws.Config) *sqs.Client {
	endpoint := resource.GetString("app.cloud.aws-endpoint")

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
