package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ErrInvalidStatusTransition is returned when an aggregate transition is
// attempted from a status that does not permit it.
var ErrInvalidStatusTransition = errors.New("invalid application status transition")

// ErrApplicationNotFound is returned by repositories when no application
// matches the query.
var ErrApplicationNotFound = errors.New("insurance application not found")

// ApplicationStatus represents the lifecycle stage of an insurance application.
type ApplicationStatus struct {
	value string
}

const (
	appStatusSubmitted   = "SUBMITTED"
	appStatusUnderReview = "UNDER_REVIEW"
	appStatusApproved    = "APPROVED"
	appStatusReferred    = "REFERRED"
	appStatusDeclined    = "DECLINED"
)

var (
	ApplicationStatusSubmitted   = ApplicationStatus{value: appStatusSubmitted}
	ApplicationStatusUnderReview = ApplicationStatus{value: appStatusUnderReview}
	ApplicationStatusApproved    = ApplicationStatus{value: appStatusApproved}
	ApplicationStatusReferred    = ApplicationStatus{value: appStatusReferred}
	ApplicationStatusDeclined    = ApplicationStatus{value: appStatusDeclined}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	appStatusSubmitted:   ApplicationStatusSubmitted,
	appStatusUnderReview: ApplicationStatusUnderReview,
	appStatusApproved:    ApplicationStatusApproved,
	appStatusReferred:    ApplicationStatusReferred,
	appStatusDeclined:    ApplicationStatusDeclined,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool {
	return s.value == other.value
}
