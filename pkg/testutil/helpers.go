// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/rentworks/erp-metrics/pkg/aging"
)

// FindBucket finds a bucket by label in an aging report.
// Returns a pointer to the bucket if found, nil otherwise.
func FindBucket(report aging.Report, label aging.BucketLabel) *aging.Bucket {
	for i := range report.Buckets {
		if report.Buckets[i].Label == label {
			return &report.Buckets[i]
		}
	}
	return nil
}

// FloatPtr returns a pointer to the given float64, for optional monetary
// fields in test fixtures.
func FloatPtr(v float64) *float64 {
	return &v
}
