package testutil

import (
	"testing"

	"github.com/rentworks/erp-metrics/pkg/aging"
)

func TestFindBucket(t *testing.T) {
	var report aging.Report
	for i, label := range aging.BucketLabels {
		report.Buckets[i].Label = label
		report.Buckets[i].Count = i
	}

	bucket := FindBucket(report, aging.BucketSixtyPlus)
	if bucket == nil {
		t.Fatalf("FindBucket() = nil, expected bucket")
	}
	if bucket.Count != 2 {
		t.Errorf("FindBucket() count = %d, expected 2", bucket.Count)
	}

	if FindBucket(report, aging.BucketLabel("15-45")) != nil {
		t.Errorf("FindBucket() for unknown label = non-nil, expected nil")
	}
}

func TestFloatPtr(t *testing.T) {
	ptr := FloatPtr(42.5)
	if ptr == nil || *ptr != 42.5 {
		t.Errorf("FloatPtr(42.5) = %v, expected pointer to 42.5", ptr)
	}
}
