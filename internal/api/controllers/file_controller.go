package controllers

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"darkshield/internal/services"
	"darkshield/pkg/utils"
)

const defaultBrowser = "dummy-browser"

// AllowedBrowsers is the upload allowlist. Version listings are not gated
// by it; any browser may be queried and an unknown one yields an empty list.
var AllowedBrowsers = []string{"chrome", "firefox", "edge", defaultBrowser}

var versionPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

type FileController struct {
	fileService services.FileServiceInterface
}

func NewFileController(fileService services.FileServiceInterface) *FileController {
	return &FileController{fileService: fileService}
}

func isAllowedBrowser(browser string) bool {
	lowered := strings.ToLower(browser)
	for _, allowed := range AllowedBrowsers {
		if lowered == allowed {
			return true
		}
	}
	return false
}

func isValidVersion(version string) bool {
	return strings.HasPrefix(strings.ToLower(version), "dummy-version") ||
		versionPattern.MatchString(version)
}

// Upload godoc
// @Summary Upload an extension binary
// @Description Store a new (browser, version) artifact from a multipart form
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param browser path string true "Target browser"
// @Param version path string true "Extension version"
// @Param file formData file true "Extension binary"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /files/admin/upload/{browser}/{version} [post]
func (fc *FileController) Upload(c *gin.Context) {
	browser := c.Param("browser")
	version := c.Param("version")

	if strings.TrimSpace(browser) == "" {
		browser = defaultBrowser
	} else if !isAllowedBrowser(browser) {
		utils.RespondError(c, http.StatusBadRequest,
			"Invalid browser. Allowed: "+strings.Join(AllowedBrowsers, ", "))
		return
	}

	if strings.TrimSpace(version) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Version is required and cannot be empty")
		return
	}
	if !isValidVersion(version) {
		utils.RespondError(c, http.StatusBadRequest,
			"Invalid version format. Must be alphanumeric (._- allowed) or start with 'dummy-version'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart field 'file' is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	id, err := fc.fileService.StoreFile(
		c.Request.Context(),
		data,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		strings.ToLower(browser),
		strings.ToLower(version),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, fmt.Sprintf("File uploaded successfully with ID: %d", id))
}

// DownloadByID godoc
// @Summary Download a file by id
// @Tags Files
// @Produce octet-stream
// @Param id path int true "File id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /files/download/{id} [get]
func (fc *FileController) DownloadByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid file id")
		return
	}

	file, err := fc.fileService.GetFileByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// DownloadByBrowserVersion godoc
// @Summary Download a file by browser and version
// @Tags Files
// @Produce octet-stream
// @Param browser path string true "Browser"
// @Param version path string true "Version"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /files/download/{browser}/{version} [get]
func (fc *FileController) DownloadByBrowserVersion(c *gin.Context) {
	// This route shares its first segment with the by-id route, so gin
	// requires the same param name; it carries the browser here.
	browser := c.Param("id")
	version := c.Param("version")

	file, err := fc.fileService.GetFileByBrowserVersion(c.Request.Context(), browser, version)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (fc *FileController) respondVersions(c *gin.Context, versions []string, err error) {
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, versions, "Versions fetched successfully")
}

// Versions godoc
// @Summary List stored versions for a browser
// @Tags Files
// @Produce json
// @Param browser path string true "Browser"
// @Success 200 {object} utils.APIResponse
// @Router /files/{browser}/versions [get]
func (fc *FileController) Versions(c *gin.Context) {
	versions, err := fc.fileService.GetVersions(c.Request.Context(), c.Param("browser"))
	fc.respondVersions(c, versions, err)
}

// VersionsChrome lists every stored chrome version.
func (fc *FileController) VersionsChrome(c *gin.Context) {
	versions, err := fc.fileService.GetVersionsChrome(c.Request.Context())
	fc.respondVersions(c, versions, err)
}

// VersionsFirefox lists every stored firefox version.
func (fc *FileController) VersionsFirefox(c *gin.Context) {
	versions, err := fc.fileService.GetVersionsFirefox(c.Request.Context())
	fc.respondVersions(c, versions, err)
}

// VersionsEdge lists every stored edge version.
func (fc *FileController) VersionsEdge(c *gin.Context) {
	versions, err := fc.fileService.GetVersionsEdge(c.Request.Context())
	fc.respondVersions(c, versions, err)
}

// ListFiles godoc
// @Summary List stored file metadata
// @Tags Files
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /files/admin/files [get]
func (fc *FileController) ListFiles(c *gin.Context) {
	files, err := fc.fileService.ListFiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, files, "Files fetched successfully")
}

// Delete godoc
// @Summary Delete a file by id
// @Tags Files
// @Produce json
// @Param id path int true "File id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /files/admin/delete/{id} [delete]
func (fc *FileController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid file id")
		return
	}

	deletedID, err := fc.fileService.DeleteFile(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": deletedID}, "File deleted successfully")
}
