package services

import (
	"context"

	"darkshield/internal/models/db_models"
	"darkshield/internal/repositories"
	"darkshield/pkg/utils"
)

const defaultContentType = "application/octet-stream"

type FileServiceInterface interface {
	StoreFile(ctx context.Context, data []byte, fileName, contentType, browser, version string) (int64, error)
	GetFileByID(ctx context.Context, id int64) (*db_models.ExtensionFile, error)
	GetFileByBrowserVersion(ctx context.Context, browser, version string) (*db_models.ExtensionFile, error)
	ListFiles(ctx context.Context) ([]db_models.ExtensionFile, error)
	DeleteFile(ctx context.Context, id int64) (int64, error)
	GetVersions(ctx context.Context, browser string) ([]string, error)
	GetVersionsChrome(ctx context.Context) ([]string, error)
	GetVersionsFirefox(ctx context.Context) ([]string, error)
	GetVersionsEdge(ctx context.Context) ([]string, error)
}

type FileService struct {
	fileRepo repositories.FileRepositoryInterface
}

func NewFileService(fileRepo repositories.FileRepositoryInterface) FileServiceInterface {
	return &FileService{fileRepo: fileRepo}
}

// StoreFile persists a new artifact. A duplicate (browser, version) pair is
// rejected by the unique index and surfaces as utils.ErrDuplicateVersion.
func (s *FileService) StoreFile(ctx context.Context, data []byte, fileName, contentType, browser, version string) (int64, error) {
	if contentType == "" {
		contentType = defaultContentType
	}

	file := &db_models.ExtensionFile{
		FileName:    fileName,
		FileSize:    int64(len(data)),
		ContentType: contentType,
		Browser:     browser,
		Version:     version,
		Data:        data,
	}

	if err := s.fileRepo.CreateFile(ctx, file); err != nil {
		return 0, err
	}
	return file.ID, nil
}

func (s *FileService) GetFileByID(ctx context.Context, id int64) (*db_models.ExtensionFile, error) {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, utils.ErrFileNotFound
	}
	return file, nil
}

func (s *FileService) GetFileByBrowserVersion(ctx context.Context, browser, version string) (*db_models.ExtensionFile, error) {
	file, err := s.fileRepo.FindByBrowserAndVersion(ctx, browser, version)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, utils.ErrFileNotFound
	}
	return file, nil
}

// ListFiles returns metadata only; an empty repository is reported as
// utils.ErrNoFiles, which the HTTP layer maps to 404.
func (s *FileService) ListFiles(ctx context.Context) ([]db_models.ExtensionFile, error) {
	files, err := s.fileRepo.ListMetadata(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, utils.ErrNoFiles
	}
	return files, nil
}

// DeleteFile removes one artifact and returns its id. Deleting an id that
// does not exist is not a fault; it reports utils.ErrFileNotFound and a
// second delete of the same id behaves identically.
func (s *FileService) DeleteFile(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.fileRepo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, utils.ErrFileNotFound
	}
	return id, nil
}

func (s *FileService) GetVersions(ctx context.Context, browser string) ([]string, error) {
	return s.fileRepo.GetVersions(ctx, browser)
}

func (s *FileService) GetVersionsChrome(ctx context.Context) ([]string, error) {
	return s.fileRepo.GetVersions(ctx, "chrome")
}

func (s *FileService) GetVersionsFirefox(ctx context.Context) ([]string, error) {
	return s.fileRepo.GetVersions(ctx, "firefox")
}

func (s *FileService) GetVersionsEdge(ctx context.Context) ([]string, error) {
	return s.fileRepo.GetVersions(ctx, "edge")
}
