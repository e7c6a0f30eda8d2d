package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	// DefaultSearchOffset is the window start used when no offset is given.
	DefaultSearchOffset = 0
	// DefaultSearchLimit is the page size used when no limit is given.
	// It also caps explicit limits, keeping every search window bounded.
	DefaultSearchLimit = 100
)

// ErrSearchFilterIsNotConstructed is returned when a SearchFilter was not
// created through the NewSearchFilter constructor.
var ErrSearchFilterIsNotConstructed = errors.New(
	"SearchFilter must be created via NewSearchFilter constructor")

// SearchFilter carries the optional criteria for order searches: a
// member-name substring (case-sensitive containment), an exact status, and
// an offset/limit window. Both retrieval strategies — the eager aggregate
// query and the batched summary projection — accept the same filter and
// select the same underlying row set for it.
//
// A blank member name means no name constraint; a nil status means no
// status constraint; present constraints are ANDed. Results are ordered by
// order id ascending so the window is stable across pages of an unmodified
// data set.
type SearchFilter struct { //nolint:recvcheck //using for validation
	memberName string
	status     *Status
	offset     int
	limit      int

	guard guard.ConstructorGuard
}

// NewSearchFilter creates a search filter with validation and windowing
// defaults. A non-positive limit falls back to DefaultSearchLimit, and
// explicit limits above DefaultSearchLimit are clamped to it. A negative
// offset is rejected. A non-nil status must be a valid Status value.
func NewSearchFilter(memberName string, status *Status, offset, limit int) (SearchFilter, error) {
	if offset < 0 {
		return SearchFilter{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return SearchFilter{}, err
		}
	}

	if limit <= 0 || limit > DefaultSearchLimit {
		limit = DefaultSearchLimit
	}

	return SearchFilter{
		memberName: memberName,
		status:     status,
		offset:     offset,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the filter was created through NewSearchFilter.
func (f SearchFilter) Validate() error {
	return f.guard.Validate(ErrSearchFilterIsNotConstructed)
}

// MemberName returns the member-name substring constraint.
// Blank means unconstrained.
func (f SearchFilter) MemberName() string {
	return f.memberName
}

// HasMemberName reports whether a name constraint is present.
func (f SearchFilter) HasMemberName() bool {
	return f.memberName != ""
}

// Status returns the exact-status constraint, or nil when unconstrained.
func (f SearchFilter) Status() *Status {
	return f.status
}

// Offset returns the window start.
func (f SearchFilter) Offset() int {
	return f.offset
}

// Limit returns the bounded window size.
func (f SearchFilter) Limit() int {
	return f.limit
}
