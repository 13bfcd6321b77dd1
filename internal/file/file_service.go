package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	fileerrors "go-orgsuite/internal/file/errors"
	"go-orgsuite/internal/shared/blob"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=file_service.go -destination=mock/file_service_mock.go -package=mock
type Service interface {
	CreateFolder(ctx context.Context, sc tenant.Scope, req CreateFolderRequest) (FolderResponse, error)
	GetFolders(ctx context.Context, sc tenant.Scope, parentID string) ([]FolderResponse, error)
	DeleteFolder(ctx context.Context, sc tenant.Scope, id string) error

	Upload(ctx context.Context, sc tenant.Scope, uploaderID, folderID string, fh *multipart.FileHeader) (FileResponse, error)
	GetFiles(ctx context.Context, sc tenant.Scope, folderID string) ([]FileResponse, error)
	Download(ctx context.Context, sc tenant.Scope, id string) (*File, io.ReadCloser, error)
	DeleteFile(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo   Repository
	store  blob.Store
	logger *zap.Logger
}

func NewService(repo Repository, store blob.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("file.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("file.service")
	}
	return &service{repo: repo, store: store, logger: l}
}

func (s *service) CreateFolder(ctx context.Context, sc tenant.Scope, req CreateFolderRequest) (FolderResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return FolderResponse{}, err
	}

	var parentID *uuid.UUID
	if req.ParentID != "" {
		parent, err := s.repo.FindFolderByID(ctx, sc, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return FolderResponse{}, fileerrors.ErrFolderNotFound
			}
			return FolderResponse{}, err
		}
		parentID = &parent.ID
	}

	folder := &Folder{
		ID:       uuid.New(),
		OrgID:    uuid.MustParse(orgID),
		ParentID: parentID,
		Name:     req.Name,
	}

	if err := s.repo.CreateFolder(ctx, folder); err != nil {
		return FolderResponse{}, err
	}
	return mapFolder(*folder), nil
}

func (s *service) GetFolders(ctx context.Context, sc tenant.Scope, parentID string) ([]FolderResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	folders, err := s.repo.FindFolders(ctx, sc, parentID)
	if err != nil {
		return nil, err
	}

	res := make([]FolderResponse, len(folders))
	for i, f := range folders {
		res[i] = mapFolder(f)
	}
	return res, nil
}

func (s *service) DeleteFolder(ctx context.Context, sc tenant.Scope, id string) error {
	if err := s.repo.DeleteFolder(ctx, sc, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fileerrors.ErrFolderNotFound
		}
		return err
	}
	return nil
}

func (s *service) Upload(ctx context.Context, sc tenant.Scope, uploaderID, folderID string, fh *multipart.FileHeader) (FileResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return FileResponse{}, err
	}
	if fh == nil || fh.Size == 0 {
		return FileResponse{}, fileerrors.ErrEmptyUpload
	}

	var folderRef *uuid.UUID
	if folderID != "" {
		folder, err := s.repo.FindFolderByID(ctx, sc, folderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return FileResponse{}, fileerrors.ErrFolderNotFound
			}
			return FileResponse{}, err
		}
		folderRef = &folder.ID
	}

	id := uuid.New()
	// object key dinamai per org supaya listing bucket tetap terkotak
	objectKey := fmt.Sprintf("%s/%s%s", orgID, id, filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")

	src, err := fh.Open()
	if err != nil {
		return FileResponse{}, err
	}
	defer src.Close()

	if err := s.store.Put(ctx, objectKey, src, fh.Size, contentType); err != nil {
		return FileResponse{}, err
	}

	f := &File{
		ID:          id,
		OrgID:       uuid.MustParse(orgID),
		FolderID:    folderRef,
		UploaderID:  uuid.MustParse(uploaderID),
		Name:        fh.Filename,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        fh.Size,
	}

	if err := s.repo.CreateFile(ctx, f); err != nil {
		// metadata gagal: bersihkan blob supaya tidak yatim
		if rmErr := s.store.Remove(ctx, objectKey); rmErr != nil {
			s.logger.Error("orphan blob cleanup failed",
				zap.String("object", objectKey),
				zap.Error(rmErr),
			)
		}
		return FileResponse{}, err
	}

	s.logger.Info("file uploaded",
		zap.String("file_id", id.String()),
		zap.String("org_id", orgID),
		zap.Int64("size", fh.Size),
	)
	return mapFile(*f), nil
}

func (s *service) GetFiles(ctx context.Context, sc tenant.Scope, folderID string) ([]FileResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	files, err := s.repo.FindFiles(ctx, sc, folderID)
	if err != nil {
		return nil, err
	}

	res := make([]FileResponse, len(files))
	for i, f := range files {
		res[i] = mapFile(f)
	}
	return res, nil
}

func (s *service) Download(ctx context.Context, sc tenant.Scope, id string) (*File, io.ReadCloser, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, nil, err
		}
	}

	f, err := s.repo.FindFileByID(ctx, sc, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fileerrors.ErrFileNotFound
		}
		return nil, nil, err
	}

	rc, err := s.store.Get(ctx, f.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return f, rc, nil
}

func (s *service) DeleteFile(ctx context.Context, sc tenant.Scope, id string) error {
	f, err := s.repo.FindFileByID(ctx, sc, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fileerrors.ErrFileNotFound
		}
		return err
	}

	if err := s.repo.DeleteFile(ctx, sc, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fileerrors.ErrFileNotFound
		}
		return err
	}

	// blob dihapus setelah metadata; kalau gagal cuma dicatat,
	// garbage collector bucket yang membereskan sisanya
	if err := s.store.Remove(ctx, f.ObjectKey); err != nil {
		s.logger.Error("remove blob failed",
			zap.String("object", f.ObjectKey),
			zap.Error(err),
		)
	}
	return nil
}

func mapFolder(f Folder) FolderResponse {
	resp := FolderResponse{
		ID:    f.ID.String(),
		OrgID: f.OrgID.String(),
		Name:  f.Name,
	}
	if f.ParentID != nil {
		resp.ParentID = f.ParentID.String()
	}
	return resp
}

func mapFile(f File) FileResponse {
	resp := FileResponse{
		ID:          f.ID.String(),
		OrgID:       f.OrgID.String(),
		UploaderID:  f.UploaderID.String(),
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
	}
	if f.FolderID != nil {
		resp.FolderID = f.FolderID.String()
	}
	return resp
}
