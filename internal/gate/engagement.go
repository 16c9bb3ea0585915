package gate

import "github.com/quicksell-labs/martbot/internal/store"

// Engagement adjusts and evaluates the per-user engagement score.
// Scores live in [0,100]; the clamp happens inside the store update.
type Engagement struct {
	db *store.DB
}

// NewEngagement creates an engagement scorer.
func NewEngagement(db *store.DB) *Engagement {
	return &Engagement{db: db}
}

// Adjust applies the reward for a user-initiated exchange, or the
// penalty for a proactive send the user did not trigger.
func (e *Engagement) Adjust(userID string, userInitiated bool) error {
	delta := ResponseReward
	if !userInitiated {
		delta = -NonResponsePenalty
	}
	return e.db.AdjustEngagement(userID, delta)
}

// Engaged reports whether a user is still worth messaging. Cold users
// are suppressed to avoid spam complaints.
func Engaged(u *store.User) bool {
	return u.EngagementScore >= EngagementThreshold
}
