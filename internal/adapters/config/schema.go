package config

// catalogFile represents the structure of the usis.yaml catalog file.
type catalogFile struct {
	FeedURL   string         `yaml:"feedUrl"`
	DataDir   string         `yaml:"dataDir"`
	PageSize  int            `yaml:"pageSize"`
	CacheTTL  int            `yaml:"cacheTtlMinutes"`
	Semesters []*semesterDTO `yaml:"semesters"`
}

// semesterDTO represents one semester entry in the catalog file.
type semesterDTO struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Year    string `yaml:"year"`
	Format  string `yaml:"format"`
	Current bool   `yaml:"current"`
}
