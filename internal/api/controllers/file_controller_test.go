package controllers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"darkshield/internal/models/db_models"
	"darkshield/pkg/utils"
)

type stubFileService struct {
	storeID    int64
	storeErr   error
	gotData    []byte
	gotName    string
	gotType    string
	gotBrowser string
	gotVersion string

	file    *db_models.ExtensionFile
	fileErr error

	files   []db_models.ExtensionFile
	listErr error

	deletedID int64
	deleteErr error

	versions    []string
	fixedLookup string
}

func (s *stubFileService) StoreFile(ctx context.Context, data []byte, fileName, contentType, browser, version string) (int64, error) {
	s.gotData = data
	s.gotName = fileName
	s.gotType = contentType
	s.gotBrowser = browser
	s.gotVersion = version
	return s.storeID, s.storeErr
}

func (s *stubFileService) GetFileByID(ctx context.Context, id int64) (*db_models.ExtensionFile, error) {
	return s.file, s.fileErr
}

func (s *stubFileService) GetFileByBrowserVersion(ctx context.Context, browser, version string) (*db_models.ExtensionFile, error) {
	s.gotBrowser = browser
	s.gotVersion = version
	return s.file, s.fileErr
}

func (s *stubFileService) ListFiles(ctx context.Context) ([]db_models.ExtensionFile, error) {
	return s.files, s.listErr
}

func (s *stubFileService) DeleteFile(ctx context.Context, id int64) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	s.deletedID = id
	return id, nil
}

func (s *stubFileService) GetVersions(ctx context.Context, browser string) ([]string, error) {
	s.gotBrowser = browser
	return s.versions, nil
}

func (s *stubFileService) GetVersionsChrome(ctx context.Context) ([]string, error) {
	s.fixedLookup = "chrome"
	return s.versions, nil
}

func (s *stubFileService) GetVersionsFirefox(ctx context.Context) ([]string, error) {
	s.fixedLookup = "firefox"
	return s.versions, nil
}

func (s *stubFileService) GetVersionsEdge(ctx context.Context) ([]string, error) {
	s.fixedLookup = "edge"
	return s.versions, nil
}

func setupFileRouter(svc *stubFileService) *gin.Engine {
	ctl := NewFileController(svc)

	r := gin.New()
	files := r.Group("/files")
	files.GET("/download/:id", ctl.DownloadByID)
	files.GET("/download/:id/:version", ctl.DownloadByBrowserVersion)
	files.GET("/:browser/versions", ctl.Versions)
	files.GET("/chrome/versions", ctl.VersionsChrome)
	files.GET("/firefox/versions", ctl.VersionsFirefox)
	files.GET("/edge/versions", ctl.VersionsEdge)
	files.POST("/admin/upload/:browser/:version", ctl.Upload)
	files.GET("/admin/files", ctl.ListFiles)
	files.DELETE("/admin/delete/:id", ctl.Delete)
	return r
}

func multipartUpload(t *testing.T, path, filename, contentType string, payload []byte) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadStoresLowercasedPair(t *testing.T) {
	svc := &stubFileService{storeID: 7}
	r := setupFileRouter(svc)

	req := multipartUpload(t, "/files/admin/upload/Chrome/1.0B", "ext.crx", "application/x-chrome-extension", []byte("binary"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "chrome", svc.gotBrowser)
	require.Equal(t, "1.0b", svc.gotVersion)
	require.Equal(t, []byte("binary"), svc.gotData)
	require.Equal(t, "ext.crx", svc.gotName)
	require.Equal(t, "application/x-chrome-extension", svc.gotType)
	require.Equal(t, "File uploaded successfully with ID: 7", decodeEnvelope(t, rec).Message)
}

func TestUploadRejectsUnknownBrowser(t *testing.T) {
	svc := &stubFileService{}
	r := setupFileRouter(svc)

	req := multipartUpload(t, "/files/admin/upload/opera/1.0", "ext.zip", "", []byte("x"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeEnvelope(t, rec).Message, "Invalid browser")
	require.Nil(t, svc.gotData)
}

func TestUploadVersionValidation(t *testing.T) {
	cases := []struct {
		version string
		ok      bool
	}{
		{"1.0", true},
		{"1.0_beta-2", true},
		{"dummy-version-xyz", true},
		{"DUMMY-VERSION !! anything", true},
		{"v 1", false},
		{"1.0+evil", false},
	}

	for _, tc := range cases {
		t.Run(tc.version, func(t *testing.T) {
			svc := &stubFileService{storeID: 1}
			r := setupFileRouter(svc)

			req := multipartUpload(t, "/files/admin/upload/chrome/"+escapePath(tc.version), "ext.zip", "", []byte("x"))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if tc.ok {
				require.Equal(t, http.StatusOK, rec.Code)
			} else {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				require.Contains(t, decodeEnvelope(t, rec).Message, "Invalid version format")
			}
		})
	}
}

func escapePath(s string) string {
	return (&url.URL{Path: s}).EscapedPath()
}

func TestUploadDefaultsBlankBrowser(t *testing.T) {
	// A blank path segment cannot reach the handler through the router, so
	// the defaulting branch is exercised against the handler directly.
	svc := &stubFileService{storeID: 3}
	ctl := NewFileController(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartUpload(t, "/files/admin/upload", "ext.zip", "", []byte("x"))
	c.Params = gin.Params{{Key: "browser", Value: ""}, {Key: "version", Value: "1.0"}}

	ctl.Upload(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "dummy-browser", svc.gotBrowser)
}

func TestUploadRejectsBlankVersion(t *testing.T) {
	svc := &stubFileService{}
	ctl := NewFileController(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartUpload(t, "/files/admin/upload", "ext.zip", "", []byte("x"))
	c.Params = gin.Params{{Key: "browser", Value: "chrome"}, {Key: "version", Value: "  "}}

	ctl.Upload(c)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Version is required")
}

func TestUploadReportsDuplicatePair(t *testing.T) {
	svc := &stubFileService{storeErr: utils.ErrDuplicateVersion}
	r := setupFileRouter(svc)

	req := multipartUpload(t, "/files/admin/upload/chrome/1.0", "ext.zip", "", []byte("x"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeEnvelope(t, rec).Message, "unique version")
}

func TestUploadRequiresFileField(t *testing.T) {
	svc := &stubFileService{}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/files/admin/upload/chrome/1.0", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadByIDReturnsPayload(t *testing.T) {
	payload := []byte{0x50, 0x4b, 0x03, 0x04}
	svc := &stubFileService{file: &db_models.ExtensionFile{
		ID:          1,
		FileName:    "darkshield-1.0.zip",
		ContentType: "application/zip",
		Data:        payload,
	}}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/download/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, payload, rec.Body.Bytes())
	require.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="darkshield-1.0.zip"`, rec.Header().Get("Content-Disposition"))
}

func TestDownloadByIDAbsent(t *testing.T) {
	svc := &stubFileService{fileErr: utils.ErrFileNotFound}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/download/99", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadByIDRejectsNonNumeric(t *testing.T) {
	svc := &stubFileService{}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/download/latest", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadByBrowserVersion(t *testing.T) {
	svc := &stubFileService{file: &db_models.ExtensionFile{
		FileName:    "ext.xpi",
		ContentType: "application/x-xpinstall",
		Data:        []byte("xpi-bytes"),
	}}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/download/firefox/3.1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "firefox", svc.gotBrowser)
	require.Equal(t, "3.1", svc.gotVersion)
	require.Equal(t, "xpi-bytes", rec.Body.String())
}

func TestVersionsFixedRoutes(t *testing.T) {
	for _, browser := range []string{"chrome", "firefox", "edge"} {
		t.Run(browser, func(t *testing.T) {
			svc := &stubFileService{versions: []string{"1.0", "2.0"}}
			r := setupFileRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/files/"+browser+"/versions", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, browser, svc.fixedLookup)
			require.Empty(t, svc.gotBrowser)
			items, ok := decodeEnvelope(t, rec).Data.([]interface{})
			require.True(t, ok)
			require.Len(t, items, 2)
		})
	}
}

func TestVersionsGenericRoute(t *testing.T) {
	svc := &stubFileService{versions: []string{"dummy-version-1"}}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/dummy-browser/versions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "dummy-browser", svc.gotBrowser)
	require.Empty(t, svc.fixedLookup)
}

func TestVersionsUnknownBrowserEmptyList(t *testing.T) {
	svc := &stubFileService{versions: []string{}}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/opera/versions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "opera", svc.gotBrowser)
	require.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListFilesEmptyMapsToNotFound(t *testing.T) {
	svc := &stubFileService{listErr: utils.ErrNoFiles}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/admin/files", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "No files found", decodeEnvelope(t, rec).Message)
}

func TestListFilesOmitsPayload(t *testing.T) {
	svc := &stubFileService{files: []db_models.ExtensionFile{{
		ID:          1,
		FileName:    "ext.zip",
		FileSize:    4,
		ContentType: "application/zip",
		Browser:     "chrome",
		Version:     "1.0",
		Data:        []byte("SECRET-PAYLOAD-BYTES"),
	}}}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/files/admin/files", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "SECRET-PAYLOAD-BYTES")
	require.Contains(t, rec.Body.String(), `"fileName":"ext.zip"`)
}

func TestDeleteFile(t *testing.T) {
	svc := &stubFileService{}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/files/admin/delete/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(5), svc.deletedID)
}

func TestDeleteFileAbsent(t *testing.T) {
	svc := &stubFileService{deleteErr: utils.ErrFileNotFound}
	r := setupFileRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/files/admin/delete/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
