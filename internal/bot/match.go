package bot

import "strings"

// Match returns the first entry whose trigger phrase occurs as a substring
// of the already-normalized input, scanning entries and their triggers in
// declaration order. The first matching category wins regardless of trigger
// length or specificity. Returns nil when nothing matches.
func (kb KnowledgeBase) Match(normalized string) *KnowledgeEntry {
	for i := range kb {
		for _, trigger := range kb[i].Triggers {
			if strings.Contains(normalized, trigger) {
				return &kb[i]
			}
		}
	}
	return nil
}
