// Package aws wraps the AWS clients the engine uses. Only SQS today: batch
// compute jobs are enqueued for the return-processor Lambda.
package aws

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
)

// SQSPublisher sends return-compute jobs to the processor queue.
type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
}

// NewSQSPublisher builds a publisher for the given queue URL. When
// AWS_ENDPOINT_URL is set (local elasticmq/localstack), the client targets
// that endpoint with static credentials instead of the default chain.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	var opts []func(*config.LoadOptions) error
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		opts = append(opts,
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", "")),
			config.WithRegion("us-east-1"),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &SQSPublisher{client: client, queueURL: queueURL}, nil
}

// PublishComputeJob enqueues one job payload. The batch ID travels as a
// message attribute so the processor can group its logs per batch.
func (p *SQSPublisher) PublishComputeJob(ctx context.Context, batchID string, job any) error {
	body, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "failed to marshal compute job")
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"BatchID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(batchID),
			},
		},
	})
	return errors.Wrap(err, "failed to send compute job to SQS")
}
