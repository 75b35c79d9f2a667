package repository

// CreateBatchOptions holds parameters for inserting a new Batch.
type CreateBatchOptions struct {
	Name string
}

// GetOneBatchOptions holds filters for fetching a single Batch.
// Name is compared case-insensitively. Non-zero fields are ANDed.
type GetOneBatchOptions struct {
	ID   int64
	Name string
}
