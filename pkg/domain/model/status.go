package model

import "strings"

// DefaultStatusIcon is used for statuses that match no keyword
const DefaultStatusIcon = ":speech_balloon:"

// StatusProfile is the status text and emoji shown on a Slack profile
type StatusProfile struct {
	Text string
	Icon string
}

// IsClear reports whether the profile clears the status
func (p StatusProfile) IsClear() bool {
	return p.Text == "" && p.Icon == ""
}

// StatusEntry maps a keyword to a profile
type StatusEntry struct {
	Keyword string
	Profile StatusProfile
}

func (e StatusEntry) matches(phrase string) bool {
	return strings.Contains(phrase, e.Keyword)
}

// StatusTable resolves spoken status phrases to profiles. Entries are evaluated in
// declaration order and the first entry whose keyword is contained in the phrase wins,
// so "doctor call" resolves to the doctor profile.
type StatusTable struct {
	entries []StatusEntry
}

// BuiltinStatusEntries returns the built-in keyword table in evaluation order
func BuiltinStatusEntries() []StatusEntry {
	return []StatusEntry{
		{Keyword: "lunch", Profile: StatusProfile{Text: "Out for lunch", Icon: ":taco:"}},
		{Keyword: "coffee", Profile: StatusProfile{Text: "Out for coffee", Icon: ":coffee:"}},
		{Keyword: "busy", Profile: StatusProfile{Text: "Do not disturb", Icon: ":no_entry_sign:"}},
		{Keyword: "errand", Profile: StatusProfile{Text: "Running an errand", Icon: ":running:"}},
		{Keyword: "doctor", Profile: StatusProfile{Text: "Doctor's appointment", Icon: ":face_with_thermometer:"}},
		{Keyword: "away", Profile: StatusProfile{Text: "AFK", Icon: ":no_entry_sign:"}},
		{Keyword: "call", Profile: StatusProfile{Text: "On a call", Icon: ":telephone_receiver:"}},
		{Keyword: "meeting", Profile: StatusProfile{Text: "In a meeting", Icon: ":spiral_calendar_pad:"}},
		{Keyword: "sick", Profile: StatusProfile{Text: "Out sick", Icon: ":face_with_thermometer:"}},
		{Keyword: "commuting", Profile: StatusProfile{Text: "Commuting", Icon: ":bus:"}},
	}
}

// NewStatusTable builds a table from the built-in entries followed by extra.
// Extra keywords are lowercased; entries with an empty keyword are skipped.
func NewStatusTable(extra ...StatusEntry) *StatusTable {
	builtin := BuiltinStatusEntries()
	entries := make([]StatusEntry, 0, len(builtin)+len(extra))
	entries = append(entries, builtin...)
	for _, e := range extra {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" {
			continue
		}
		entries = append(entries, StatusEntry{Keyword: kw, Profile: e.Profile})
	}
	return &StatusTable{entries: entries}
}

// Entries returns a copy of the table in evaluation order
func (t *StatusTable) Entries() []StatusEntry {
	out := make([]StatusEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Resolve maps a status phrase to a profile. It never fails: an empty phrase clears
// the status and an unmatched phrase becomes the status text itself.
func (t *StatusTable) Resolve(keyword string) StatusProfile {
	phrase := strings.ToLower(strings.TrimSpace(keyword))
	if phrase == "" {
		return StatusProfile{}
	}

	for _, e := range t.entries {
		if e.matches(phrase) {
			return e.Profile
		}
	}

	return StatusProfile{Text: keyword, Icon: DefaultStatusIcon}
}
