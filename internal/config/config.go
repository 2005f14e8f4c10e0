package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Description handling for exported records.
const (
	DescriptionTruncate = "truncate"
	DescriptionStrip    = "strip"
)

// Export schemes.
const (
	SchemeCSV  = "csv"
	SchemeFlat = "flat"
	SchemeXLSX = "xlsx"
)

type Company struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type BoardSource struct {
	Enabled   bool      `yaml:"enabled"`
	Companies []Company `yaml:"companies"`
}

type EmailSource struct {
	Enabled          bool     `yaml:"enabled"`
	IMAPHost         string   `yaml:"imap_host"`
	IMAPPort         int      `yaml:"imap_port"`
	Username         string   `yaml:"username"`
	Mailbox          string   `yaml:"mailbox"`
	SearchSubjectAny []string `yaml:"search_subject_any"`
}

type Config struct {
	Search struct {
		Terms         []string `yaml:"terms"`
		ResultsWanted int      `yaml:"results_wanted"`
		MaxDaysOld    int      `yaml:"max_days_old"`
		TargetState   string   `yaml:"target_state"`
		UserEmail     string   `yaml:"user_email"`
	} `yaml:"search"`

	Filters struct {
		// SkipTitleMatch disables the title-keyword filter; by default only
		// postings whose title contains a search term are kept.
		SkipTitleMatch  bool   `yaml:"skip_title_match"`
		KeepUndated     bool   `yaml:"keep_undated"`
		DescriptionMode string `yaml:"description_mode"`
	} `yaml:"filters"`

	Export struct {
		Scheme    string `yaml:"scheme"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"export"`

	Sources struct {
		Greenhouse      BoardSource `yaml:"greenhouse"`
		Lever           BoardSource `yaml:"lever"`
		SmartRecruiters BoardSource `yaml:"smartrecruiters"`
		Email           EmailSource `yaml:"email"`
	} `yaml:"sources"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv overrides identity and IMAP settings from the environment.
// A .env file next to the binary is honored if present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("JOBSWEEP_USER_EMAIL"); v != "" {
		c.Search.UserEmail = v
	}
	if v := os.Getenv("JOBSWEEP_IMAP_HOST"); v != "" {
		c.Sources.Email.IMAPHost = v
	}
	if v := os.Getenv("JOBSWEEP_IMAP_USERNAME"); v != "" {
		c.Sources.Email.Username = v
	}
}

func (c *Config) applyDefaults() {
	if c.Search.ResultsWanted == 0 {
		c.Search.ResultsWanted = 200
	}
	if c.Search.MaxDaysOld == 0 {
		c.Search.MaxDaysOld = 2
	}
	if c.Search.TargetState == "" {
		c.Search.TargetState = "NY"
	}
	if c.Filters.DescriptionMode == "" {
		c.Filters.DescriptionMode = DescriptionTruncate
	}
	if c.Export.Scheme == "" {
		c.Export.Scheme = SchemeCSV
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "out"
	}
	if c.Sources.Email.Mailbox == "" {
		c.Sources.Email.Mailbox = "INBOX"
	}
	if c.Sources.Email.IMAPPort == 0 {
		c.Sources.Email.IMAPPort = 993
	}
}
