package catalog

// Status is the release maturity of a record.
type Status string

// Record status constants.
const (
	StatusStable Status = "stable"
	StatusBeta   Status = "beta"
	StatusNew    Status = "new"
)

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	return s == StatusStable || s == StatusBeta || s == StatusNew
}

// Rank returns the fixed presentation order: new < beta < stable.
// Unknown statuses sort last.
func (s Status) Rank() int {
	switch s {
	case StatusNew:
		return 0
	case StatusBeta:
		return 1
	case StatusStable:
		return 2
	default:
		return 3
	}
}
