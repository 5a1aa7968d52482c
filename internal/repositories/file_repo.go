package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"darkshield/internal/models/db_models"
	"darkshield/pkg/utils"
)

// metadataColumns is every column except the binary payload; listings never
// load the blob.
var metadataColumns = []string{"id", "file_name", "file_size", "content_type", "browser", "version"}

type FileRepositoryInterface interface {
	CreateFile(ctx context.Context, file *db_models.ExtensionFile) error
	FindByID(ctx context.Context, id int64) (*db_models.ExtensionFile, error)
	FindByBrowserAndVersion(ctx context.Context, browser, version string) (*db_models.ExtensionFile, error)
	ListMetadata(ctx context.Context) ([]db_models.ExtensionFile, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	GetVersions(ctx context.Context, browser string) ([]string, error)
}

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) CreateFile(ctx context.Context, file *db_models.ExtensionFile) error {
	err := r.db.WithContext(ctx).Create(file).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateVersion
	}
	return err
}

func (r *FileRepository) FindByID(ctx context.Context, id int64) (*db_models.ExtensionFile, error) {
	var file db_models.ExtensionFile
	err := r.db.WithContext(ctx).First(&file, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) FindByBrowserAndVersion(ctx context.Context, browser, version string) (*db_models.ExtensionFile, error) {
	var file db_models.ExtensionFile
	err := r.db.WithContext(ctx).
		Where("browser = ? AND version = ?", browser, version).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) ListMetadata(ctx context.Context) ([]db_models.ExtensionFile, error) {
	files := make([]db_models.ExtensionFile, 0)
	err := r.db.WithContext(ctx).Select(metadataColumns).Find(&files).Error
	return files, err
}

func (r *FileRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.ExtensionFile{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FileRepository) GetVersions(ctx context.Context, browser string) ([]string, error) {
	versions := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&db_models.ExtensionFile{}).
		Where("browser = ?", browser).
		Pluck("version", &versions).Error
	return versions, err
}
