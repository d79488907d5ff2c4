package domain

// CopyStatus is the circulation state of a physical copy.
type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "AVAILABLE"
	CopyStatusIssued    CopyStatus = "ISSUED"

	// CopyStatusLost is accepted by storage but no operation moves a copy
	// into or out of it.
	CopyStatusLost CopyStatus = "LOST"
)

func (s CopyStatus) String() string { return string(s) }

func (s CopyStatus) IsValid() bool {
	switch s {
	case CopyStatusAvailable, CopyStatusIssued, CopyStatusLost:
		return true
	}
	return false
}

// IssueStatus is the state of a single issue history record.
type IssueStatus string

const (
	IssueStatusIssued   IssueStatus = "ISSUED"
	IssueStatusReturned IssueStatus = "RETURNED"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusIssued, IssueStatusReturned:
		return true
	}
	return false
}
