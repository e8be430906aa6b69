package domain

// ScopeKind kind of a pricing rule scope
type ScopeKind int

const (
	// ScopeBranchWide rule applies to every court of the branch
	ScopeBranchWide ScopeKind = iota
	// ScopeCourt rule applies to exactly one court
	ScopeCourt
)

// String returns the scope kind label used in logs and API responses
func (k ScopeKind) String() string {
	if k == ScopeCourt {
		return "court"
	}
	return "branch"
}

// Scope is the court scope of a pricing rule: either a single court or the whole branch.
// The zero value is branch-wide.
type Scope struct {
	kind    ScopeKind
	courtID int64
}

// CourtScope returns a scope bound to the given court
func CourtScope(courtID int64) Scope {
	return Scope{kind: ScopeCourt, courtID: courtID}
}

// BranchWideScope returns a scope covering every court of the branch
func BranchWideScope() Scope {
	return Scope{kind: ScopeBranchWide}
}

// ScopeFromCourtID maps a nullable court id (as stored in the database) to a Scope
func ScopeFromCourtID(courtID *int64) Scope {
	if courtID == nil {
		return BranchWideScope()
	}
	return CourtScope(*courtID)
}

// Kind returns the scope kind
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// IsCourtSpecific returns true if the scope is bound to a single court
func (s Scope) IsCourtSpecific() bool {
	return s.kind == ScopeCourt
}

// CourtID returns the court id and true for court scopes, (0, false) for branch-wide scopes
func (s Scope) CourtID() (int64, bool) {
	if s.kind != ScopeCourt {
		return 0, false
	}
	return s.courtID, true
}

// CourtIDPtr returns the nullable court id representation (nil for branch-wide)
func (s Scope) CourtIDPtr() *int64 {
	if s.kind != ScopeCourt {
		return nil
	}
	id := s.courtID
	return &id
}

// Covers returns true if the scope applies to the given court
func (s Scope) Covers(courtID int64) bool {
	switch s.kind {
	case ScopeCourt:
		return s.courtID == courtID
	default:
		return true
	}
}
