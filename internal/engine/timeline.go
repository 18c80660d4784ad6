package engine

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/gyeh/claimsight/internal/model"
)

var firstInteger = regexp.MustCompile(`\d+`)

// EstimateTimeline computes the expected claim-completion time from the
// discharge timestamp and the policy turnaround. now is passed in explicitly
// so the estimator stays deterministic and testable.
//
// The turnaround is read as the first integer in the policy string; a
// "business days" qualifier is parsed but the addition is plain calendar
// days, matching the upstream rule as written.
func EstimateTimeline(policy model.Policy, facts model.BillFacts, now time.Time) model.TimelineResult {
	days := approvalDays(policy.ApprovalTime)
	if days == nil || facts.DischargeAt == nil {
		return model.TimelineResult{Mode: model.TimelineUnavailable}
	}

	completion := facts.DischargeAt.AddDate(0, 0, *days)
	if completion.After(now) {
		hours := roundHalfUp(completion.Sub(now).Hours())
		return model.TimelineResult{
			Mode:           model.TimelineHoursRemaining,
			HoursRemaining: &hours,
			CompletionAt:   &completion,
		}
	}

	return model.TimelineResult{
		Mode:         model.TimelineCompletionPassed,
		CompletionAt: &completion,
	}
}

func approvalDays(s string) *int {
	m := firstInteger.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
