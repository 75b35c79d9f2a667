package student

import "io"

// DefaultDegree is printed on ID cards whose department has no degree on record.
const DefaultDegree = "Bachelor of Engineering Technology"

// Fields are the editable attributes of a student record.
type Fields struct {
	Name             string
	FatherName       string
	CNIC             string
	Caste            string
	RollNo           string
	Batch            string
	Department       string
	Year             string
	Enrollment       string
	EmergencyContact string
	Relation         string
	BloodGroup       string
	Address          string
}

// Student is a stored student record. Batch and Department hold names, not ids.
type Student struct {
	ID int64
	Fields
	ImagePath string
	QRCode    string
	// Degree comes from the department whose name matches Department, case-insensitively.
	Degree string
}

// Image is an uploaded photo. Size is the client-declared size in bytes.
type Image struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// IDCard is the data printed on a student's card.
type IDCard struct {
	Student   Student
	Degree    string
	ImageURL  string
	QRCodeURL string
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Fields Fields
	// Image is optional.
	Image *Image
}

type CreateInput struct {
	Fields Fields
}

type ListInput struct {
	Batch      string
	Department string
}

type UpdateInput struct {
	ID     int64
	Fields Fields
	Image  *Image
}

type UploadImageInput struct {
	ID    int64
	Image Image
}

type ImportInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type GenerateInput struct {
	Batch      string
	Department string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Student Student
}

type ListOutput struct {
	Students []Student
}

type DetailOutput struct {
	Student Student
}

type UpdateOutput struct {
	Student Student
}

type UploadImageOutput struct {
	ImagePath string
	ImageURL  string
}

type ImportOutput struct {
	Inserted int
	Updated  int
	Skipped  int
}

type GenerateOutput struct {
	Students []Student
}

type IDCardOutput struct {
	Card IDCard
}
