package repository

import (
	"context"
	"time"

	"github.com/malphitee/ec2-network-monitor/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// CheckInstance issues a DescribeInstances call for the given instance
	// and returns its state name. Used as a connectivity and credential
	// check before any metric query.
	CheckInstance(ctx context.Context, instanceID string) (string, error)

	// GetAccountID resolves the caller's account ID via STS.
	GetAccountID(ctx context.Context) (string, error)

	// GetNetworkTraffic fetches the NetworkIn and NetworkOut daily averages
	// for the instance between start and end, joined by timestamp.
	GetNetworkTraffic(ctx context.Context, instanceID string, start, end time.Time) ([]entity.Datapoint, error)
}
