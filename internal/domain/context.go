package domain

type Config struct {
	Version string
	APIName string
	Host    string
	Port    int

	// DatasetPath optionally points at a JSON file overriding the built-in
	// sample sequence. Empty means the built-in sequence is used.
	DatasetPath string

	DisableNumeric bool
	DisableRecords bool
}

type Context struct {
	Config Config
}
