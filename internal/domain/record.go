package domain

// Record is the flattened, placeholder-filled form of a posting, ready for
// export. Keys are the entries of RecordFields.
type Record map[string]string

// Field names written as the export header. Body field order must match this
// list exactly for every record.
const (
	FieldJobID       = "Job ID"
	FieldTitle       = "Job Title (Primary)"
	FieldCompany     = "Company Name"
	FieldIndustry    = "Industry"
	FieldExperience  = "Experience Level"
	FieldJobType     = "Job Type"
	FieldIsRemote    = "Is Remote"
	FieldCurrency    = "Currency"
	FieldSalaryMin   = "Salary Min"
	FieldSalaryMax   = "Salary Max"
	FieldDatePosted  = "Date Posted"
	FieldCity        = "Location City"
	FieldState       = "Location State"
	FieldCountry     = "Location Country"
	FieldURL         = "Job URL"
	FieldDescription = "Job Description"
	FieldSource      = "Job Source"
	FieldUserEmail   = "User Email"
)

// RecordFields returns the declared field list for a run. The trailing
// "User Email" column is only present when a submitter identity is set.
func RecordFields(withIdentity bool) []string {
	fields := []string{
		FieldJobID, FieldTitle, FieldCompany, FieldIndustry,
		FieldExperience, FieldJobType, FieldIsRemote, FieldCurrency,
		FieldSalaryMin, FieldSalaryMax, FieldDatePosted, FieldCity,
		FieldState, FieldCountry, FieldURL, FieldDescription,
		FieldSource,
	}
	if withIdentity {
		fields = append(fields, FieldUserEmail)
	}
	return fields
}

// Placeholder values for absent optional fields.
const (
	PlaceholderUnknown     = "Unknown"
	PlaceholderNotProvided = "Not Provided"
	PlaceholderNoDesc      = "No description available"
)
