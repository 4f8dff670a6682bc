package mapper

import (
	"strings"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

// statusRules map free-text status phrases from upstream systems onto
// workflow stages. Rules are checked in order and the first match
// wins, so "Stitching + Fitting done" lands on Stitching rather than
// Installation. Matching is case-insensitive substring.
var statusRules = []struct {
	substrings []string
	status     domain.OrderStatus
}{
	{[]string{"pending"}, domain.StatusFabricPending},
	{[]string{"transit", "cutting"}, domain.StatusInTransit},
	{[]string{"stitching"}, domain.StatusStitching},
	{[]string{"installation", "hardware", "fit"}, domain.StatusInstallation},
	{[]string{"completed", "handed", "done"}, domain.StatusCompleted},
}

// NormalizeStatus maps an arbitrary status phrase to a workflow
// stage. Unrecognized input defaults to the start of the workflow.
func NormalizeStatus(raw string) domain.OrderStatus {
	lower := strings.ToLower(raw)
	for _, rule := range statusRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.status
			}
		}
	}
	return domain.StatusFabricPending
}
