package main

type Config struct {
	// ContentPath holds the absolute path to the folder whose files are imported into the CMS
	ContentPath string `env:"CONTENT_PATH" env-required:"true"`
	// ContentPatterns are the glob patterns of the imported files, relative to ContentPath
	ContentPatterns []string `env:"CONTENT_PATTERNS" env-default:"**/*.html,**/*.htm,**/*.md,**/*.txt"`
	// HomeDir is where the index and the database are stored. Defaults to the user's home directory
	HomeDir string `env:"HOME_DIR"`
	// FQDN stores the domain name of the server
	FQDN string `env:"FQDN" env-default:"localhost"`
	Port string `env:"PORT" env-default:"3000"`
	// BatchSize indicates the number of resources persisted by the indexer in one operation
	BatchSize int `env:"BATCH_SIZE" env-default:"100"`
	// ResultsPerPage sets the size of the pages of the resources list
	ResultsPerPage int `env:"RESULTS_PER_PAGE" env-default:"10"`
	// SearchFormConfig is the path to a yaml file with the search form configuration
	SearchFormConfig string `env:"SEARCH_FORM_CONFIG"`
	// JwtSecret stores the string to use to sign session tokens
	JwtSecret string `env:"JWT_SECRET"`
	// SessionTimeout specifies the maximum time a user session may last in hours
	SessionTimeout float64 `env:"SESSION_TIMEOUT" env-default:"24"`
	// SkipReimport starts the server without importing the content folder again
	SkipReimport bool `env:"SKIP_REIMPORT" env-default:"false"`
}
