package aws

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/malphitee/ec2-network-monitor/internal/domain/entity"
	"github.com/malphitee/ec2-network-monitor/internal/domain/repository"
	"github.com/malphitee/ec2-network-monitor/internal/shared/types"
)

// metricPeriod is the CloudWatch statistics bucket width: one day.
const metricPeriod = 86400

// AWSRepositoryImpl implements AWSRepository on top of the AWS SDK v2
// clients. All three clients share one resolved config, so the credential
// chain is evaluated once per process rather than per request.
type AWSRepositoryImpl struct {
	ec2Client *ec2.Client
	cwClient  *cloudwatch.Client
	stsClient *sts.Client
}

// NewAWSRepository resolves the AWS config from cfg and builds the EC2,
// CloudWatch and STS clients. Static keys take precedence; with no keys in
// cfg the SDK default chain applies.
func NewAWSRepository(ctx context.Context, cfg *types.Config) (repository.AWSRepository, error) {
	if cfg.Region == "" {
		return nil, types.ErrNoRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSRepositoryImpl{
		ec2Client: ec2.NewFromConfig(awsCfg),
		cwClient:  cloudwatch.NewFromConfig(awsCfg),
		stsClient: sts.NewFromConfig(awsCfg),
	}, nil
}

// CheckInstance describes the target instance and returns its state name.
// The describe result is otherwise discarded; the call exists to surface
// credential and connectivity problems before the metric queries run.
func (r *AWSRepositoryImpl) CheckInstance(ctx context.Context, instanceID string) (string, error) {
	out, err := r.ec2Client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe instance %s: %w", instanceID, err)
	}

	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			if aws.ToString(instance.InstanceId) == instanceID && instance.State != nil {
				return string(instance.State.Name), nil
			}
		}
	}
	return "", fmt.Errorf("instance %s not found", instanceID)
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	out, err := r.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(out.Account), nil
}

// GetNetworkTraffic fetches the NetworkIn and NetworkOut daily averages for
// the instance concurrently and joins the two series by timestamp.
func (r *AWSRepositoryImpl) GetNetworkTraffic(ctx context.Context, instanceID string, start, end time.Time) ([]entity.Datapoint, error) {
	var (
		inPoints  []cwTypes.Datapoint
		outPoints []cwTypes.Datapoint
		wg        sync.WaitGroup
	)
	errChan := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		points, err := r.getMetricAverages(ctx, instanceID, "NetworkIn", start, end)
		if err != nil {
			errChan <- fmt.Errorf("failed to get NetworkIn statistics: %w", err)
			return
		}
		inPoints = points
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		points, err := r.getMetricAverages(ctx, instanceID, "NetworkOut", start, end)
		if err != nil {
			errChan <- fmt.Errorf("failed to get NetworkOut statistics: %w", err)
			return
		}
		outPoints = points
	}()

	wg.Wait()
	close(errChan)

	if len(errChan) > 0 {
		return nil, <-errChan
	}

	return joinByTimestamp(inPoints, outPoints), nil
}

func (r *AWSRepositoryImpl) getMetricAverages(ctx context.Context, instanceID, metricName string, start, end time.Time) ([]cwTypes.Datapoint, error) {
	out, err := r.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/EC2"),
		MetricName: aws.String(metricName),
		Dimensions: []cwTypes.Dimension{
			{Name: aws.String("InstanceId"), Value: aws.String(instanceID)},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(metricPeriod),
		Statistics: []cwTypes.Statistic{cwTypes.StatisticAverage},
	})
	if err != nil {
		return nil, err
	}
	return out.Datapoints, nil
}

// joinByTimestamp merges the two series into combined datapoints keyed by
// the returned timestamps. CloudWatch mostly returns same-length series for
// identical period parameters, but that is not contractual; a day present in
// only one series still yields a datapoint with the missing side at zero.
func joinByTimestamp(inPoints, outPoints []cwTypes.Datapoint) []entity.Datapoint {
	merged := make(map[int64]*entity.Datapoint, len(inPoints))

	for _, p := range inPoints {
		if p.Timestamp == nil {
			continue
		}
		ts := p.Timestamp.UTC()
		merged[ts.Unix()] = &entity.Datapoint{
			Timestamp: ts,
			InAverage: aws.ToFloat64(p.Average),
		}
	}
	for _, p := range outPoints {
		if p.Timestamp == nil {
			continue
		}
		ts := p.Timestamp.UTC()
		if dp, ok := merged[ts.Unix()]; ok {
			dp.OutAverage = aws.ToFloat64(p.Average)
			continue
		}
		merged[ts.Unix()] = &entity.Datapoint{
			Timestamp:  ts,
			OutAverage: aws.ToFloat64(p.Average),
		}
	}

	points := make([]entity.Datapoint, 0, len(merged))
	for _, dp := range merged {
		points = append(points, *dp)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points
}
