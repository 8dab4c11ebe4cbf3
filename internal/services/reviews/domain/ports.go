package domain

import "context"

// Cleaner normalizes a single review
type Cleaner interface {
	Clean(ctx context.Context, in Input) (Cleaned, error)
}

// Runner cleans a whole CSV file
type Runner interface {
	Run(ctx context.Context, in RunInput) (RunStats, error)
}
