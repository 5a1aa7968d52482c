package db_models

// ExtensionFile is one uploaded extension binary. The (browser, version)
// pair is unique at the database level; concurrent uploads of the same pair
// race on the index, never on an application-side existence check. The
// payload is excluded from JSON so metadata listings stay small.
type ExtensionFile struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	FileName    string `gorm:"type:text" json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `gorm:"type:text" json:"contentType"`
	Browser     string `gorm:"type:text;uniqueIndex:idx_browser_version" json:"browser"`
	Version     string `gorm:"type:text;uniqueIndex:idx_browser_version" json:"version"`
	Data        []byte `gorm:"type:bytea" json:"-"`
}

func (ExtensionFile) TableName() string {
	return "files"
}
