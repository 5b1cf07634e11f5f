package domain

// Plan is a tenant's subscription tier.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// Unlimited marks a limit that is never reached.
const Unlimited = -1

type Limits struct {
	MaxNotes int
	MaxUsers int
}

var planLimits = map[Plan]Limits{
	PlanFree: {MaxNotes: 3, MaxUsers: 5},
	PlanPro:  {MaxNotes: Unlimited, MaxUsers: Unlimited},
}

// Limits returns the quotas for p. Unknown plans get the FREE quotas.
func (p Plan) Limits() Limits {
	if l, ok := planLimits[p]; ok {
		return l
	}
	return planLimits[PlanFree]
}

func (p Plan) Valid() bool {
	_, ok := planLimits[p]
	return ok
}

// AllowsNotes reports whether one more note fits next to count existing ones.
func (l Limits) AllowsNotes(count int) bool {
	return l.MaxNotes == Unlimited || count < l.MaxNotes
}

// AllowsUsers reports whether one more user fits next to count existing or
// reserved seats.
func (l Limits) AllowsUsers(count int) bool {
	return l.MaxUsers == Unlimited || count < l.MaxUsers
}
