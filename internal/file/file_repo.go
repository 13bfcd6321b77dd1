package file

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=file_repo.go -destination=mock/file_repo_mock.go -package=mock
type Repository interface {
	CreateFolder(ctx context.Context, folder *Folder) error
	FindFolders(ctx context.Context, sc tenant.Scope, parentID string) ([]Folder, error)
	FindFolderByID(ctx context.Context, sc tenant.Scope, id string) (*Folder, error)
	DeleteFolder(ctx context.Context, sc tenant.Scope, id string) error

	CreateFile(ctx context.Context, f *File) error
	FindFiles(ctx context.Context, sc tenant.Scope, folderID string) ([]File, error)
	FindFileByID(ctx context.Context, sc tenant.Scope, id string) (*File, error)
	DeleteFile(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateFolder(ctx context.Context, folder *Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *repository) FindFolders(ctx context.Context, sc tenant.Scope, parentID string) ([]Folder, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Filter(sc))
	if parentID != "" {
		q = q.Where("parent_id = ?", parentID)
	} else {
		q = q.Where("parent_id IS NULL")
	}

	var folders []Folder
	err := q.Order("name ASC").Find(&folders).Error
	return folders, err
}

func (r *repository) FindFolderByID(ctx context.Context, sc tenant.Scope, id string) (*Folder, error) {
	var folder Folder
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&folder, "id = ?", id).Error
	return &folder, err
}

func (r *repository) DeleteFolder(ctx context.Context, sc tenant.Scope, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		Delete(&Folder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateFile(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindFiles(ctx context.Context, sc tenant.Scope, folderID string) ([]File, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Filter(sc))
	if folderID != "" {
		q = q.Where("folder_id = ?", folderID)
	}

	var files []File
	err := q.Order("created_at DESC").Find(&files).Error
	return files, err
}

func (r *repository) FindFileByID(ctx context.Context, sc tenant.Scope, id string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&f, "id = ?", id).Error
	return &f, err
}

func (r *repository) DeleteFile(ctx context.Context, sc tenant.Scope, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		Delete(&File{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
