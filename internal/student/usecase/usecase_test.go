package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-id-card-generation/internal/batch"
	"student-id-card-generation/internal/department"
	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
	"student-id-card-generation/internal/student/usecase"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/qrcode"
	"student-id-card-generation/pkg/storage"
)

// fakeRepo keeps students in memory keyed by id.
type fakeRepo struct {
	students map[int64]student.Student
	nextID   int64
	degrees  map[string]string
	importFn func(opts []repo.UpsertStudentOptions) (int, int, error)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{students: map[int64]student.Student{}, degrees: map[string]string{"software": "BS Software Engineering"}}
}

func (f *fakeRepo) withDegree(s student.Student) student.Student {
	s.Degree = f.degrees[strings.ToLower(s.Department)]
	return s
}

func (f *fakeRepo) CreateStudent(ctx context.Context, opt repo.CreateStudentOptions) (student.Student, error) {
	f.nextID++
	s := f.withDegree(student.Student{ID: f.nextID, Fields: opt.Fields, ImagePath: opt.ImagePath})
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeRepo) GetOneStudent(ctx context.Context, opt repo.GetOneStudentOptions) (student.Student, error) {
	for _, s := range f.students {
		if opt.ID != 0 && s.ID != opt.ID {
			continue
		}
		if opt.RollNo != "" && s.RollNo != opt.RollNo {
			continue
		}
		return s, nil
	}
	return student.Student{}, nil
}

func (f *fakeRepo) ListStudents(ctx context.Context, opt repo.ListStudentsOptions) ([]student.Student, error) {
	var out []student.Student
	for id := int64(1); id <= f.nextID; id++ {
		s, ok := f.students[id]
		if !ok {
			continue
		}
		if opt.Batch != "" && s.Batch != opt.Batch {
			continue
		}
		if opt.Department != "" && s.Department != opt.Department {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStudent(ctx context.Context, opt repo.UpdateStudentOptions) (student.Student, error) {
	s, ok := f.students[opt.ID]
	if !ok {
		return student.Student{}, nil
	}
	s.Fields = opt.Fields
	if opt.ImagePath != "" {
		s.ImagePath = opt.ImagePath
	}
	s = f.withDegree(s)
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeRepo) DeleteStudent(ctx context.Context, id int64) error {
	delete(f.students, id)
	return nil
}

func (f *fakeRepo) ImportStudents(ctx context.Context, opts []repo.UpsertStudentOptions) (int, int, error) {
	if f.importFn != nil {
		return f.importFn(opts)
	}
	return len(opts), 0, nil
}

func (f *fakeRepo) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	s := f.students[id]
	s.ImagePath = imagePath
	f.students[id] = s
	return nil
}

func (f *fakeRepo) SetQRCode(ctx context.Context, id int64, qrCode string) error {
	s := f.students[id]
	s.QRCode = qrCode
	f.students[id] = s
	return nil
}

// fakeLookup answers Missing from a fixed set of lower-cased names.
type fakeLookup struct {
	known map[string]bool
}

func (f fakeLookup) Missing(ctx context.Context, names []string) ([]string, error) {
	var missing []string
	for _, n := range names {
		if !f.known[strings.ToLower(n)] {
			missing = append(missing, n)
		}
	}
	return missing, nil
}

func (f fakeLookup) Delete(ctx context.Context, id int64) error { return nil }

type batchLookup struct{ fakeLookup }

func (batchLookup) Create(ctx context.Context, input batch.CreateInput) (batch.CreateOutput, error) {
	return batch.CreateOutput{}, nil
}

func (batchLookup) List(ctx context.Context) (batch.ListOutput, error) {
	return batch.ListOutput{}, nil
}

type departmentLookup struct{ fakeLookup }

func (departmentLookup) Create(ctx context.Context, input department.CreateInput) (department.CreateOutput, error) {
	return department.CreateOutput{}, nil
}

func (departmentLookup) List(ctx context.Context) (department.ListOutput, error) {
	return department.ListOutput{}, nil
}

type fixture struct {
	uc    student.UseCase
	repo  *fakeRepo
	store *storage.Local
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	r := newFakeRepo()
	store := storage.NewLocal(t.TempDir(), "/static")
	uc := usecase.New(usecase.Deps{
		Logger:       log.NewNop(),
		Repo:         r,
		BatchUC:      batchLookup{fakeLookup{known: map[string]bool{"2021": true, "2022": true}}},
		DepartmentUC: departmentLookup{fakeLookup{known: map[string]bool{"software": true}}},
		Storage:      store,
		QR:           qrcode.NewDefault(),
		Metrics:      metrics.New(),
	}, usecase.Config{
		MaxImageBytes:     16,
		AllowedImageExts:  []string{"png", "jpg", "jpeg", "gif"},
		StudentImageDir:   "uploads/students",
		UploadedImageDir:  "uploads/student_images",
		QRCodeDir:         "qr_codes",
		MaxImportFileSize: 1 << 20,
	})
	return fixture{uc: uc, repo: r, store: store}
}

func validFields() student.Fields {
	return student.Fields{
		Name: "Ali Raza", FatherName: "Raza Khan", CNIC: "45102-1234567-1", Caste: "Shah",
		RollNo: "21BSCS01", Batch: "2021", Department: "Software", Year: "1",
	}
}

func exists(t *testing.T, root, key string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	return err == nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores photo under roll and name", func(t *testing.T) {
		fx := newFixture(t)
		out, err := fx.uc.Register(ctx, student.RegisterInput{
			Fields: validFields(),
			Image:  &student.Image{Filename: "me.PNG", Size: 4, Content: bytes.NewReader([]byte("\x89PNG"))},
		})
		require.NoError(t, err)

		path := out.Student.ImagePath
		assert.True(t, strings.HasPrefix(path, "uploads/students/21BSCS01_Ali_Raza_"), path)
		assert.True(t, strings.HasSuffix(path, ".png"), path)
		assert.True(t, exists(t, fx.store.Root(), path))
	})

	t.Run("missing required field", func(t *testing.T) {
		fx := newFixture(t)
		f := validFields()
		f.Year = "  "
		_, err := fx.uc.Register(ctx, student.RegisterInput{Fields: f})
		assert.ErrorIs(t, err, student.ErrMissingRequiredFields)
	})

	t.Run("duplicate roll number", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.uc.Register(ctx, student.RegisterInput{Fields: validFields()})
		require.NoError(t, err)
		_, err = fx.uc.Register(ctx, student.RegisterInput{Fields: validFields()})
		assert.ErrorIs(t, err, student.ErrDuplicateRollNo)
	})

	t.Run("rejects bad image", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.uc.Register(ctx, student.RegisterInput{
			Fields: validFields(),
			Image:  &student.Image{Filename: "cv.pdf", Size: 3, Content: strings.NewReader("pdf")},
		})
		assert.ErrorIs(t, err, student.ErrUnsupportedImageType)

		_, err = fx.uc.Register(ctx, student.RegisterInput{
			Fields: validFields(),
			Image:  &student.Image{Filename: "big.jpg", Content: strings.NewReader(strings.Repeat("x", 17))},
		})
		assert.ErrorIs(t, err, student.ErrImageTooLarge)
	})

	t.Run("undefined filename means no photo", func(t *testing.T) {
		fx := newFixture(t)
		out, err := fx.uc.Register(ctx, student.RegisterInput{
			Fields: validFields(),
			Image:  &student.Image{Filename: "undefined", Content: strings.NewReader("")},
		})
		require.NoError(t, err)
		assert.Empty(t, out.Student.ImagePath)
	})
}

func TestUpdateReplacesImage(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	created, err := fx.uc.Register(ctx, student.RegisterInput{
		Fields: validFields(),
		Image:  &student.Image{Filename: "a.png", Content: strings.NewReader("old")},
	})
	require.NoError(t, err)
	oldPath := created.Student.ImagePath

	f := validFields()
	f.Name = "Ali R"
	f.RollNo = "21BSCS09"
	out, err := fx.uc.Update(ctx, student.UpdateInput{
		ID:     created.Student.ID,
		Fields: f,
		Image:  &student.Image{Filename: "b.jpg", Content: strings.NewReader("new")},
	})
	require.NoError(t, err)

	assert.NotEqual(t, oldPath, out.Student.ImagePath)
	assert.True(t, exists(t, fx.store.Root(), out.Student.ImagePath))
	assert.False(t, exists(t, fx.store.Root(), oldPath), "old photo is deleted")

	// Without a new photo the stored one is kept.
	out, err = fx.uc.Update(ctx, student.UpdateInput{ID: created.Student.ID, Fields: f})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Student.ImagePath, "uploads/students/21BSCS09_Ali_R_"))

	_, err = fx.uc.Update(ctx, student.UpdateInput{ID: 999, Fields: f})
	assert.ErrorIs(t, err, student.ErrStudentNotFound)
}

func TestDeleteRemovesFiles(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	created, err := fx.uc.Register(ctx, student.RegisterInput{
		Fields: validFields(),
		Image:  &student.Image{Filename: "a.png", Content: strings.NewReader("img")},
	})
	require.NoError(t, err)
	_, err = fx.uc.Generate(ctx, student.GenerateInput{})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(ctx, created.Student.ID))
	assert.False(t, exists(t, fx.store.Root(), created.Student.ImagePath))
	assert.False(t, exists(t, fx.store.Root(), "qr_codes/qr_1.png"))

	assert.ErrorIs(t, fx.uc.Delete(ctx, created.Student.ID), student.ErrStudentNotFound)
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	created, err := fx.uc.Create(ctx, student.CreateInput{Fields: validFields()})
	require.NoError(t, err)

	out, err := fx.uc.UploadImage(ctx, student.UploadImageInput{
		ID:    created.Student.ID,
		Image: student.Image{Filename: "my photo.jpg", Content: strings.NewReader("jpg")},
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/student_images/1_my_photo.jpg", out.ImagePath)
	assert.Equal(t, "/static/uploads/student_images/1_my_photo.jpg", out.ImageURL)
	assert.Equal(t, out.ImagePath, fx.repo.students[1].ImagePath)

	_, err = fx.uc.UploadImage(ctx, student.UploadImageInput{ID: 1})
	assert.ErrorIs(t, err, student.ErrNoFile)

	_, err = fx.uc.UploadImage(ctx, student.UploadImageInput{
		ID:    1,
		Image: student.Image{Filename: "x.bmp", Content: strings.NewReader("b")},
	})
	assert.ErrorIs(t, err, student.ErrUnsupportedImageType)
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and skips incomplete rows", func(t *testing.T) {
		fx := newFixture(t)
		var got []repo.UpsertStudentOptions
		fx.repo.importFn = func(opts []repo.UpsertStudentOptions) (int, int, error) {
			got = opts
			return 1, 1, nil
		}

		csv := "Name,Father Name,CNIC,Caste,Roll No,Batch,Department,Year\n" +
			"Ali,Raza,1,Shah,21BSCS01,2021,Software,1\n" +
			"Sara,Ahmed,2,Memon,21BSCS02,2021,SOFTWARE,1\n" +
			",NoName,3,X,21BSCS03,2021,Software,1\n"
		out, err := fx.uc.Import(ctx, student.ImportInput{Filename: "students.csv", Size: int64(len(csv)), Content: strings.NewReader(csv)})
		require.NoError(t, err)

		assert.Equal(t, student.ImportOutput{Inserted: 1, Updated: 1, Skipped: 1}, out)
		require.Len(t, got, 2)
		assert.Equal(t, "21BSCS02", got[1].Fields.RollNo)
		assert.Equal(t, "SOFTWARE", got[1].Fields.Department)
	})

	t.Run("stops on unknown batches and departments", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.importFn = func([]repo.UpsertStudentOptions) (int, int, error) {
			t.Fatal("nothing may be written")
			return 0, 0, nil
		}

		csv := "name,father_name,cnic,caste,roll_no,batch,department\n" +
			"Ali,Raza,1,Shah,21BSCS01,2019,Civil\n" +
			"Sara,Ahmed,2,Memon,21BSCS02,2020,Software\n"
		_, err := fx.uc.Import(ctx, student.ImportInput{Filename: "s.csv", Content: strings.NewReader(csv)})

		var refErr *student.MissingReferencesError
		require.True(t, errors.As(err, &refErr))
		assert.Equal(t, "⚠️ Import stopped. Missing batches: 2019, 2020 | Missing departments: civil", err.Error())
	})

	t.Run("missing columns", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.uc.Import(ctx, student.ImportInput{Filename: "s.csv", Content: strings.NewReader("name,roll_no\nA,1\n")})
		assert.ErrorIs(t, err, student.ErrMissingColumns)
	})

	t.Run("unsupported file", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.uc.Import(ctx, student.ImportInput{Filename: "s.xls", Content: strings.NewReader("x")})
		assert.ErrorIs(t, err, student.ErrUnsupportedImportFile)
	})
}

func TestGenerateAndIDCard(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	a, err := fx.uc.Create(ctx, student.CreateInput{Fields: validFields()})
	require.NoError(t, err)
	other := validFields()
	other.RollNo = "22CIV01"
	other.Batch = "2022"
	other.Department = "Civil"
	b, err := fx.uc.Create(ctx, student.CreateInput{Fields: other})
	require.NoError(t, err)

	out, err := fx.uc.Generate(ctx, student.GenerateInput{Batch: "2021"})
	require.NoError(t, err)
	require.Len(t, out.Students, 1)
	assert.Equal(t, "qr_codes/qr_1.png", out.Students[0].QRCode)
	assert.True(t, exists(t, fx.store.Root(), "qr_codes/qr_1.png"))
	assert.Empty(t, fx.repo.students[b.Student.ID].QRCode, "filtered out students are untouched")

	card, err := fx.uc.IDCard(ctx, a.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, "BS Software Engineering", card.Card.Degree)
	assert.Equal(t, "/static/qr_codes/qr_1.png", card.Card.QRCodeURL)
	assert.Empty(t, card.Card.ImageURL)

	card, err = fx.uc.IDCard(ctx, b.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.DefaultDegree, card.Card.Degree)

	_, err = fx.uc.IDCard(ctx, 42)
	assert.ErrorIs(t, err, student.ErrStudentNotFound)
}

func TestGenerateWithoutFilter(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	for _, roll := range []string{"A1", "A2", "A3"} {
		f := validFields()
		f.RollNo = roll
		_, err := fx.uc.Create(ctx, student.CreateInput{Fields: f})
		require.NoError(t, err)
	}
	out, err := fx.uc.Generate(ctx, student.GenerateInput{})
	require.NoError(t, err)
	assert.Len(t, out.Students, 3)
	for _, s := range out.Students {
		assert.True(t, exists(t, fx.store.Root(), s.QRCode), s.QRCode)
	}
}
