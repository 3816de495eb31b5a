// Package rules loads the keyword tables and reply templates the pipeline
// evaluates. Keeping them in a data file means the crisis keyword list and the
// category rules can be extended without recompiling.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CategoryRule is one ordered entry in the response-category rule list
type CategoryRule struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Ruleset is the full rule table loaded from disk
type Ruleset struct {
	// CrisisKeywords are matched as case-insensitive substrings against the
	// full raw message, before any truncation.
	CrisisKeywords []string `json:"crisis_keywords"`

	// Categories are evaluated in file order; the first rule whose keyword
	// matches wins.
	Categories []CategoryRule `json:"categories"`

	// Replies maps a category name to its rule-based reply text
	Replies map[string]string `json:"replies"`

	// GenericReply is used when no category rule matches
	GenericReply string `json:"generic_reply"`

	// CrisisFooter is the fixed emergency-resources block appended to every
	// reply for a crisis-flagged message.
	CrisisFooter string `json:"crisis_footer"`

	// SystemPrompt is handed to the generative responder
	SystemPrompt string `json:"system_prompt"`
}

// Load reads and validates a rule table from a JSON file
func Load(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %q: %w", path, err)
	}

	var rs Ruleset
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %q: %w", path, err)
	}

	if err := rs.validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file %q: %w", path, err)
	}

	rs.normalize()
	return &rs, nil
}

func (rs *Ruleset) validate() error {
	if len(rs.CrisisKeywords) == 0 {
		return fmt.Errorf("crisis_keywords must not be empty")
	}
	if len(rs.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}
	for _, c := range rs.Categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", c.Name)
		}
	}
	if rs.GenericReply == "" {
		return fmt.Errorf("generic_reply must not be empty")
	}
	if rs.CrisisFooter == "" {
		return fmt.Errorf("crisis_footer must not be empty")
	}
	return nil
}

// normalize lower-cases every keyword once so matching never has to
func (rs *Ruleset) normalize() {
	for i, k := range rs.CrisisKeywords {
		rs.CrisisKeywords[i] = strings.ToLower(k)
	}
	for i := range rs.Categories {
		for j, k := range rs.Categories[i].Keywords {
			rs.Categories[i].Keywords[j] = strings.ToLower(k)
		}
	}
}

// Default returns the built-in rule table, used when no rules file is
// configured and by tests.
func Default() *Ruleset {
	rs := &Ruleset{
		CrisisKeywords: []string{
			"suicide", "kill myself", "end my life", "hurt myself",
			"want to die", "can't go on", "killme",
		},
		Categories: []CategoryRule{
			{Name: "stress", Keywords: []string{"stress", "stressed", "anxious", "anxiety", "panic"}},
			{Name: "sad", Keywords: []string{"sad", "depressed", "down", "hopeless"}},
			{Name: "sleep", Keywords: []string{"sleep", "insomnia", "can't sleep", "tired"}},
			{Name: "happy", Keywords: []string{"happy", "excited", "thrilled"}},
		},
		Replies: map[string]string{
			"stress": "I'm sorry you're feeling stressed — that sounds tough. Would you like a short breathing exercise or some tips to handle an upcoming deadline?",
			"sad":    "I hear you. Feeling low is valid. Can you tell me one small thing that felt okay today?",
			"sleep":  "Sleep problems can make everything harder. Try a 4-4-4 breathing before bed and reduce screen time an hour before sleep.",
			"happy":  "That's wonderful to hear! Keep doing what makes you feel good and spread the positivity.",
		},
		GenericReply: "Thanks for sharing. Tell me more, or choose 'Self-care' for exercises that may help right now.",
		CrisisFooter: "If you are in immediate danger, please call your local emergency number now.\n" +
			"KIRAN National Helpline (India): 1800-599-0019\n" +
			"988 Suicide & Crisis Lifeline (USA): 988\n" +
			"You matter, and help is available right now.",
		SystemPrompt: "You are a supportive, empathetic mental health assistant for students. " +
			"Use short, clear sentences. If the user expresses self-harm intent, provide crisis resources and advise to contact emergency help.",
	}
	rs.normalize()
	return rs
}
