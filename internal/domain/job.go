package domain

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeTemporary  JobType = "TEMPORARY"
)

type Location struct {
	City    string
	State   string
	Country string
}

type Compensation struct {
	Currency  string
	MinAmount float64
	MaxAmount float64
}

// JobPosting is one listing as returned by a source scraper.
// Everything except ID, Title and URL may be absent.
type JobPosting struct {
	ID              string
	Title           string
	CompanyName     string
	Industry        string
	ExperienceLevel string
	JobType         *JobType
	IsRemote        bool
	Compensation    *Compensation
	DatePosted      *time.Time
	Location        *Location
	Description     string
	URL             string
}
