package file_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"go-orgsuite/internal/file"
	fileerrors "go-orgsuite/internal/file/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeFileRepo struct {
	CreateFolderFn   func(ctx context.Context, folder *file.Folder) error
	FindFoldersFn    func(ctx context.Context, sc tenant.Scope, parentID string) ([]file.Folder, error)
	FindFolderByIDFn func(ctx context.Context, sc tenant.Scope, id string) (*file.Folder, error)
	DeleteFolderFn   func(ctx context.Context, sc tenant.Scope, id string) error
	CreateFileFn     func(ctx context.Context, f *file.File) error
	FindFilesFn      func(ctx context.Context, sc tenant.Scope, folderID string) ([]file.File, error)
	FindFileByIDFn   func(ctx context.Context, sc tenant.Scope, id string) (*file.File, error)
	DeleteFileFn     func(ctx context.Context, sc tenant.Scope, id string) error
}

func (f *fakeFileRepo) CreateFolder(ctx context.Context, folder *file.Folder) error {
	return f.CreateFolderFn(ctx, folder)
}
func (f *fakeFileRepo) FindFolders(ctx context.Context, sc tenant.Scope, parentID string) ([]file.Folder, error) {
	return f.FindFoldersFn(ctx, sc, parentID)
}
func (f *fakeFileRepo) FindFolderByID(ctx context.Context, sc tenant.Scope, id string) (*file.Folder, error) {
	return f.FindFolderByIDFn(ctx, sc, id)
}
func (f *fakeFileRepo) DeleteFolder(ctx context.Context, sc tenant.Scope, id string) error {
	return f.DeleteFolderFn(ctx, sc, id)
}
func (f *fakeFileRepo) CreateFile(ctx context.Context, fl *file.File) error {
	return f.CreateFileFn(ctx, fl)
}
func (f *fakeFileRepo) FindFiles(ctx context.Context, sc tenant.Scope, folderID string) ([]file.File, error) {
	return f.FindFilesFn(ctx, sc, folderID)
}
func (f *fakeFileRepo) FindFileByID(ctx context.Context, sc tenant.Scope, id string) (*file.File, error) {
	return f.FindFileByIDFn(ctx, sc, id)
}
func (f *fakeFileRepo) DeleteFile(ctx context.Context, sc tenant.Scope, id string) error {
	return f.DeleteFileFn(ctx, sc, id)
}

type fakeBlobStore struct {
	putErr    error
	removeErr error

	putKeys    []string
	removeKeys []string
}

func (f *fakeBlobStore) Put(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) error {
	f.putKeys = append(f.putKeys, objectName)
	return f.putErr
}

func (f *fakeBlobStore) Get(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("isi")), nil
}

func (f *fakeBlobStore) Remove(_ context.Context, objectName string) error {
	f.removeKeys = append(f.removeKeys, objectName)
	return f.removeErr
}

func multipartFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(buf.Len()))
	assert.NoError(t, err)
	return form.File["file"][0]
}

func TestFileService_Upload(t *testing.T) {
	orgID := uuid.New().String()
	uploaderID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("success stores blob under org-prefixed key", func(t *testing.T) {
		store := &fakeBlobStore{}
		var saved *file.File
		repo := &fakeFileRepo{
			CreateFileFn: func(_ context.Context, f *file.File) error {
				saved = f
				return nil
			},
		}

		svc := file.NewService(repo, store)
		resp, err := svc.Upload(context.Background(), sc, uploaderID, "", multipartFile(t, "laporan.pdf", "isi laporan"))

		assert.NoError(t, err)
		assert.Len(t, store.putKeys, 1)
		assert.True(t, strings.HasPrefix(store.putKeys[0], orgID+"/"))
		assert.True(t, strings.HasSuffix(store.putKeys[0], ".pdf"))
		assert.Equal(t, store.putKeys[0], saved.ObjectKey)
		assert.Equal(t, "laporan.pdf", resp.Name)
		assert.Empty(t, store.removeKeys)
	})

	t.Run("metadata failure removes orphan blob", func(t *testing.T) {
		store := &fakeBlobStore{}
		repo := &fakeFileRepo{
			CreateFileFn: func(context.Context, *file.File) error {
				return errors.New("insert failed")
			},
		}

		svc := file.NewService(repo, store)
		_, err := svc.Upload(context.Background(), sc, uploaderID, "", multipartFile(t, "laporan.pdf", "isi laporan"))

		assert.EqualError(t, err, "insert failed")
		assert.Len(t, store.putKeys, 1)
		assert.Equal(t, store.putKeys, store.removeKeys)
	})

	t.Run("metadata failure still surfaces when cleanup also fails", func(t *testing.T) {
		store := &fakeBlobStore{removeErr: errors.New("bucket unreachable")}
		repo := &fakeFileRepo{
			CreateFileFn: func(context.Context, *file.File) error {
				return errors.New("insert failed")
			},
		}

		svc := file.NewService(repo, store)
		_, err := svc.Upload(context.Background(), sc, uploaderID, "", multipartFile(t, "laporan.pdf", "isi laporan"))

		assert.EqualError(t, err, "insert failed")
		assert.Len(t, store.removeKeys, 1)
	})

	t.Run("empty upload rejected before touching the store", func(t *testing.T) {
		store := &fakeBlobStore{}
		svc := file.NewService(&fakeFileRepo{}, store)

		_, err := svc.Upload(context.Background(), sc, uploaderID, "", nil)
		assert.ErrorIs(t, err, fileerrors.ErrEmptyUpload)

		_, err = svc.Upload(context.Background(), sc, uploaderID, "", multipartFile(t, "kosong.txt", ""))
		assert.ErrorIs(t, err, fileerrors.ErrEmptyUpload)
		assert.Empty(t, store.putKeys)
	})

	t.Run("unknown folder rejected", func(t *testing.T) {
		repo := &fakeFileRepo{
			FindFolderByIDFn: func(context.Context, tenant.Scope, string) (*file.Folder, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := file.NewService(repo, &fakeBlobStore{})
		_, err := svc.Upload(context.Background(), sc, uploaderID, uuid.New().String(), multipartFile(t, "laporan.pdf", "isi"))

		assert.ErrorIs(t, err, fileerrors.ErrFolderNotFound)
	})
}

func TestFileService_DeleteFile(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}
	stored := &file.File{
		ID:        uuid.New(),
		OrgID:     uuid.MustParse(orgID),
		ObjectKey: orgID + "/obj.pdf",
	}

	t.Run("removes metadata then blob", func(t *testing.T) {
		store := &fakeBlobStore{}
		repo := &fakeFileRepo{
			FindFileByIDFn: func(context.Context, tenant.Scope, string) (*file.File, error) {
				return stored, nil
			},
			DeleteFileFn: func(context.Context, tenant.Scope, string) error { return nil },
		}

		svc := file.NewService(repo, store)
		err := svc.DeleteFile(context.Background(), sc, stored.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{stored.ObjectKey}, store.removeKeys)
	})

	t.Run("blob removal failure is logged only", func(t *testing.T) {
		store := &fakeBlobStore{removeErr: errors.New("bucket unreachable")}
		repo := &fakeFileRepo{
			FindFileByIDFn: func(context.Context, tenant.Scope, string) (*file.File, error) {
				return stored, nil
			},
			DeleteFileFn: func(context.Context, tenant.Scope, string) error { return nil },
		}

		svc := file.NewService(repo, store)
		assert.NoError(t, svc.DeleteFile(context.Background(), sc, stored.ID.String()))
	})

	t.Run("missing file maps to not found", func(t *testing.T) {
		store := &fakeBlobStore{}
		repo := &fakeFileRepo{
			FindFileByIDFn: func(context.Context, tenant.Scope, string) (*file.File, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := file.NewService(repo, store)
		err := svc.DeleteFile(context.Background(), sc, uuid.New().String())

		assert.ErrorIs(t, err, fileerrors.ErrFileNotFound)
		assert.Empty(t, store.removeKeys)
	})
}
