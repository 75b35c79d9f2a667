package department

// Department is an academic department and the degree it awards.
type Department struct {
	ID     int64
	Name   string
	Degree string
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name   string
	Degree string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Department Department
}

type ListOutput struct {
	Departments []Department
}
