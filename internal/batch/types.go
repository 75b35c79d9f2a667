package batch

// Batch is an intake cohort students are tagged with, e.g. "2021" or "BSCS-21".
type Batch struct {
	ID   int64
	Name string
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Batch Batch
}

type ListOutput struct {
	Batches []Batch
}
