package aws

import (
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

func point(ts time.Time, avg float64) cwTypes.Datapoint {
	return cwTypes.Datapoint{
		Timestamp: awssdk.Time(ts),
		Average:   awssdk.Float64(avg),
	}
}

func TestJoinByTimestamp(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	// CloudWatch does not promise ordered responses; feed the series shuffled.
	in := []cwTypes.Datapoint{point(day2, 200), point(day1, 100)}
	out := []cwTypes.Datapoint{point(day1, 50), point(day3, 300)}

	got := joinByTimestamp(in, out)
	if len(got) != 3 {
		t.Fatalf("expected 3 joined datapoints, got %d", len(got))
	}

	// Joined by timestamp, sorted ascending.
	if !got[0].Timestamp.Equal(day1) || got[0].InAverage != 100 || got[0].OutAverage != 50 {
		t.Errorf("day1 joined wrong: %+v", got[0])
	}
	if !got[1].Timestamp.Equal(day2) || got[1].InAverage != 200 || got[1].OutAverage != 0 {
		t.Errorf("day2 should keep zero out side: %+v", got[1])
	}
	if !got[2].Timestamp.Equal(day3) || got[2].InAverage != 0 || got[2].OutAverage != 300 {
		t.Errorf("day3 should keep zero in side: %+v", got[2])
	}
}

func TestJoinByTimestampEmpty(t *testing.T) {
	if got := joinByTimestamp(nil, nil); len(got) != 0 {
		t.Fatalf("expected no datapoints, got %d", len(got))
	}
}
