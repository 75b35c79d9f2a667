package student

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Register is the public self-service registration, with an optional photo.
	Register(ctx context.Context, input RegisterInput) (CreateOutput, error)
	// Create is the admin's manual entry.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, input UploadImageInput) (UploadImageOutput, error)
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	// Generate renders and stores a QR code for every student matching the filter.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	IDCard(ctx context.Context, id int64) (IDCardOutput, error)
}
