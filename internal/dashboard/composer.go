// AngelaMos | 2026
// composer.go

package dashboard

import (
	"github.com/bite-platform/bite-backend/internal/policy"
	"github.com/bite-platform/bite-backend/internal/role"
)

// Widget is a request-scoped descriptor; it is never persisted. Its
// presence in the response is the authorization signal: a locked
// feature simply never appears.
type Widget struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Type  string         `json:"type"`
	Data  map[string]any `json:"data,omitempty"`
}

// Compose is a pure function of (role, tier, profileData). Gated
// widgets come first in declaration order, then the base widgets every
// user gets. Unknown roles get only the base set; a tier the role does
// not recognize gates like Free.
func Compose(r role.Role, tier string, profileData any) []Widget {
	rules := policy.RulesFor(r)
	widgets := make([]Widget, 0, len(rules)+2)

	var data map[string]any
	if profileData != nil {
		data = map[string]any{"profile": profileData}
	}

	for _, rule := range rules {
		if !rule.Requires.Satisfied(r, tier) {
			continue
		}
		widgets = append(widgets, Widget{
			ID:    rule.ID,
			Title: rule.Title,
			Type:  rule.Type,
			Data:  data,
		})
	}

	return append(widgets, baseWidgets()...)
}

func baseWidgets() []Widget {
	return []Widget{
		{ID: "recent-activity", Title: "Recent Activity", Type: "activity"},
		{ID: "quick-actions", Title: "Quick Actions", Type: "actions"},
	}
}
