package domain

import "path/filepath"

const (
	// AppDirName is the name of the internal application directory.
	AppDirName = ".usis"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// CatalogFileName is the name of the semester catalog file.
	CatalogFileName = "usis.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultAppPath returns the default root directory for usis metadata.
func DefaultAppPath() string {
	return AppDirName
}

// DefaultCachePath returns the default path for the semester data cache.
// It joins .usis and cache.
func DefaultCachePath() string {
	return filepath.Join(AppDirName, CacheDirName)
}

// DefaultCatalogPath returns the default path of the catalog file.
func DefaultCatalogPath() string {
	return CatalogFileName
}
