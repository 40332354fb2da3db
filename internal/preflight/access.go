package preflight

// AccessMode selects the permissions a check requires.
type AccessMode int

const (
	AccessRead AccessMode = iota
	AccessReadWrite
	AccessExecute
)

func (m AccessMode) String() string {
	switch m {
	case AccessReadWrite:
		return "read/write"
	case AccessExecute:
		return "execute"
	default:
		return "read"
	}
}
