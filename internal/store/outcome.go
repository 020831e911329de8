package store

// OutcomeKind distinguishes how a mutation settled. The original design
// conflated remote and local-only success inside silent catch blocks; here
// the distinction is an explicit, named outcome, but user-visible behavior
// is unchanged: only Rejected represents a failure to the caller.
type OutcomeKind int

const (
	// AppliedRemote means the server confirmed the write and its echoed
	// representation was applied locally.
	AppliedRemote OutcomeKind = iota
	// AppliedLocal means the remote write failed and the locally
	// constructed representation was applied anyway.
	AppliedLocal
	// Rejected means a domain precondition failed and no local or remote
	// mutation was performed.
	Rejected
)

func (k OutcomeKind) String() string {
	switch k {
	case AppliedRemote:
		return "applied-remote"
	case AppliedLocal:
		return "applied-local"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome reports how a mutation resolved. For AppliedLocal, Err carries the
// absorbed transport error for logging; for Rejected, the domain error.
type Outcome struct {
	Err  error
	ID   string
	Kind OutcomeKind
}

// Applied reports whether the intended end state is reflected locally.
func (o Outcome) Applied() bool {
	return o.Kind != Rejected
}

func rejected(err error) Outcome {
	return Outcome{Kind: Rejected, Err: err}
}
