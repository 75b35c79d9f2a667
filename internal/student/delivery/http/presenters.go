package http

import (
	"student-id-card-generation/internal/student"
)

// --- Request DTOs ---

// studentReq binds from JSON for admin entry and from multipart forms for
// registration and updates.
type studentReq struct {
	Name             string `json:"name" form:"name"`
	FatherName       string `json:"father_name" form:"father_name"`
	CNIC             string `json:"cnic" form:"cnic"`
	Caste            string `json:"caste" form:"caste"`
	RollNo           string `json:"roll_no" form:"roll_no"`
	Batch            string `json:"batch" form:"batch"`
	Department       string `json:"department" form:"department"`
	Year             string `json:"year" form:"year"`
	Enrollment       string `json:"enrollment" form:"enrollment"`
	EmergencyContact string `json:"emergency_contact" form:"emergency_contact"`
	Relation         string `json:"relation" form:"relation"`
	BloodGroup       string `json:"blood_group" form:"blood_group"`
	Address          string `json:"address" form:"address"`
}

func (r studentReq) toFields() student.Fields {
	return student.Fields{
		Name:             r.Name,
		FatherName:       r.FatherName,
		CNIC:             r.CNIC,
		Caste:            r.Caste,
		RollNo:           r.RollNo,
		Batch:            r.Batch,
		Department:       r.Department,
		Year:             r.Year,
		Enrollment:       r.Enrollment,
		EmergencyContact: r.EmergencyContact,
		Relation:         r.Relation,
		BloodGroup:       r.BloodGroup,
		Address:          r.Address,
	}
}

type listReq struct {
	Batch      string `form:"batch"`
	Department string `form:"department"`
}

func (r listReq) toInput() student.ListInput {
	return student.ListInput{Batch: r.Batch, Department: r.Department}
}

type generateReq struct {
	Batch      string `json:"batch"`
	Department string `json:"department"`
}

func (r generateReq) toInput() student.GenerateInput {
	return student.GenerateInput{Batch: r.Batch, Department: r.Department}
}

// --- Response DTOs ---

type studentResp struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	FatherName       string `json:"father_name"`
	CNIC             string `json:"cnic"`
	Caste            string `json:"caste"`
	RollNo           string `json:"roll_no"`
	Batch            string `json:"batch"`
	Department       string `json:"department"`
	Year             string `json:"year"`
	Enrollment       string `json:"enrollment"`
	EmergencyContact string `json:"emergency_contact"`
	Relation         string `json:"relation"`
	BloodGroup       string `json:"blood_group"`
	Address          string `json:"address"`
	ImagePath        string `json:"image_path"`
	QRCode           string `json:"qr_code"`
	Degree           string `json:"degree"`
}

func newStudentResp(s student.Student) studentResp {
	return studentResp{
		ID:               s.ID,
		Name:             s.Name,
		FatherName:       s.FatherName,
		CNIC:             s.CNIC,
		Caste:            s.Caste,
		RollNo:           s.RollNo,
		Batch:            s.Batch,
		Department:       s.Department,
		Year:             s.Year,
		Enrollment:       s.Enrollment,
		EmergencyContact: s.EmergencyContact,
		Relation:         s.Relation,
		BloodGroup:       s.BloodGroup,
		Address:          s.Address,
		ImagePath:        s.ImagePath,
		QRCode:           s.QRCode,
		Degree:           s.Degree,
	}
}

func newStudentResps(students []student.Student) []studentResp {
	out := make([]studentResp, len(students))
	for i, s := range students {
		out[i] = newStudentResp(s)
	}
	return out
}

type detailResp struct {
	Student studentResp `json:"student"`
}

func (h *handler) newDetailResp(s student.Student) detailResp {
	return detailResp{Student: newStudentResp(s)}
}

type listResp struct {
	Students []studentResp `json:"students"`
}

func (h *handler) newListResp(out student.ListOutput) listResp {
	return listResp{Students: newStudentResps(out.Students)}
}

type generateResp struct {
	Students []studentResp `json:"students"`
}

func (h *handler) newGenerateResp(out student.GenerateOutput) generateResp {
	return generateResp{Students: newStudentResps(out.Students)}
}

// uploadImageResp is written bare, the admin page reads status directly.
type uploadImageResp struct {
	Status    string `json:"status"`
	ImagePath string `json:"image_path,omitempty"`
	Message   string `json:"message,omitempty"`
}

type importResp struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

func (h *handler) newImportResp(out student.ImportOutput) importResp {
	return importResp{Inserted: out.Inserted, Updated: out.Updated, Skipped: out.Skipped}
}

type idCardResp struct {
	Student   studentResp `json:"student"`
	Degree    string      `json:"degree"`
	ImageURL  string      `json:"image_url"`
	QRCodeURL string      `json:"qr_code_url"`
}

func (h *handler) newIDCardResp(out student.IDCardOutput) idCardResp {
	return idCardResp{
		Student:   newStudentResp(out.Card.Student),
		Degree:    out.Card.Degree,
		ImageURL:  out.Card.ImageURL,
		QRCodeURL: out.Card.QRCodeURL,
	}
}
