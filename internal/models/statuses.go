package models

type ApplicationStatus string
type ApplicationType string
type Priority string

const (
	StatusWishlist  ApplicationStatus = "wishlist"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffered   ApplicationStatus = "offered"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"

	TypeOnline   ApplicationType = "online"
	TypeReferral ApplicationType = "referral"
	TypeCampus   ApplicationType = "campus"
	TypeWalkIn   ApplicationType = "walk-in"
	TypeOther    ApplicationType = "other"

	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ApplicationStatuses lists every status in its canonical pipeline order.
// Statistics buckets and the status sort both derive from this slice.
var ApplicationStatuses = []ApplicationStatus{
	StatusWishlist,
	StatusApplied,
	StatusInterview,
	StatusOffered,
	StatusRejected,
	StatusAccepted,
}

var ApplicationTypes = []ApplicationType{
	TypeOnline,
	TypeReferral,
	TypeCampus,
	TypeWalkIn,
	TypeOther,
}

var Priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (t ApplicationType) Valid() bool {
	for _, v := range ApplicationTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}
