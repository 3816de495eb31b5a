// Package responder picks a response strategy for a classified message and
// produces the reply text, either rule-based or through a generative service.
package responder

import (
	"strings"

	"mindcare/backend/pkg/rules"
)

// Category is the response bucket used to select a reply strategy
type Category string

const (
	CategoryStress  Category = "stress"
	CategorySad     Category = "sad"
	CategorySleep   Category = "sleep"
	CategoryHappy   Category = "happy"
	CategoryCrisis  Category = "crisis"
	CategoryGeneric Category = "generic"
)

// Selector evaluates the ordered category rule list over lower-cased text.
// Rule order is significant: a message mentioning both stress and happy
// keywords resolves to whichever rule appears first in the table.
type Selector struct {
	rules *rules.Ruleset
}

// NewSelector creates a selector over the loaded rule table
func NewSelector(rs *rules.Ruleset) *Selector {
	return &Selector{rules: rs}
}

// Select picks a response category. The crisis flag is an overlay: when set,
// the category is crisis regardless of which keyword rule would have matched.
// Pure function of its inputs, no state.
func (s *Selector) Select(text string, _ float64, crisis bool) Category {
	if crisis {
		return CategoryCrisis
	}

	lowered := strings.ToLower(text)
	for _, cr := range s.rules.Categories {
		for _, k := range cr.Keywords {
			if strings.Contains(lowered, k) {
				return Category(cr.Name)
			}
		}
	}

	return CategoryGeneric
}

// BaseReply returns the fixed rule-based reply for a category. Crisis maps to
// the generic reply; the emergency block is appended separately by Finalize.
func (s *Selector) BaseReply(category Category) string {
	if reply, ok := s.rules.Replies[string(category)]; ok {
		return reply
	}
	return s.rules.GenericReply
}

// Finalize appends the fixed emergency-resources block to a reply when the
// message was crisis-flagged. This applies to generated replies as well as
// rule-based ones.
func (s *Selector) Finalize(reply string, crisis bool) string {
	if !crisis {
		return reply
	}
	return reply + "\n\n" + s.rules.CrisisFooter
}
