package mailcow

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Goto addresses mailcow uses to mark non-delivering aliases.
const (
	gotoDiscard = "null@localhost"
	gotoSpam    = "spam@localhost"
)

// State is the delivery behavior of an alias, derived from its goto
// address.
type State string

const (
	StateActive  State = "Active"
	StateSpam    State = "Spam"
	StateDiscard State = "Discard"
)

// Alias is one forwarding address on the mailcow instance.
type Alias struct {
	ID            int    `json:"id"`
	Address       string `json:"address"`
	Domain        string `json:"domain"`
	Goto          string `json:"goto"`
	PublicComment string `json:"public_comment"`
	Active        bool   `json:"active"`
}

// State reports whether the alias delivers, collects spam, or discards.
func (a Alias) State() State {
	switch a.Goto {
	case gotoDiscard:
		return StateDiscard
	case gotoSpam:
		return StateSpam
	default:
		return StateActive
	}
}

// CreateRequest describes a new alias. Created aliases are active.
type CreateRequest struct {
	Address       string
	Goto          string
	PublicComment string
}

// EditAttrs are the alias attributes an edit can change. Goto, GotoNull
// and GotoSpam are mutually exclusive; zero fields are omitted from the
// request.
type EditAttrs struct {
	Goto          string
	GotoNull      bool
	GotoSpam      bool
	PublicComment *string
}

// attr builds the edit payload. mailcow expects the toggle flags as the
// string "1".
func (a EditAttrs) attr() map[string]any {
	attr := make(map[string]any)
	if a.Goto != "" {
		attr["goto"] = a.Goto
	}
	if a.GotoNull {
		attr["goto_null"] = "1"
	}
	if a.GotoSpam {
		attr["goto_spam"] = "1"
	}
	if a.PublicComment != nil {
		attr["public_comment"] = *a.PublicComment
	}
	return attr
}

// Result summarizes a successful mutation.
type Result struct {
	ID      int
	Address string
	Comment string
}

// wire types

// aliasEntry is the wire form of an alias. Numeric fields arrive bare or
// quoted depending on the mailcow version, so they decode through intish.
type aliasEntry struct {
	ID            intish `json:"id"`
	Address       string `json:"address"`
	Domain        string `json:"domain"`
	Goto          string `json:"goto"`
	PublicComment string `json:"public_comment"`
	Active        intish `json:"active"`
}

func (e aliasEntry) alias() Alias {
	return Alias{
		ID:            int(e.ID),
		Address:       e.Address,
		Domain:        e.Domain,
		Goto:          e.Goto,
		PublicComment: e.PublicComment,
		Active:        e.Active != 0,
	}
}

// intish decodes numeric fields that may arrive bare, quoted, or null.
type intish int

func (n *intish) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("numeric field %q: %w", s, err)
	}
	*n = intish(v)
	return nil
}

// apiStatus is one element of a mutation response. msg is a bare string
// or an array; log echoes the request, with the payload at index 3.
type apiStatus struct {
	Type string            `json:"type"`
	Log  []json.RawMessage `json:"log"`
	Msg  json.RawMessage   `json:"msg"`
}

func (s apiStatus) ok() bool { return s.Type == "success" }

// msgParts flattens msg into strings.
func (s apiStatus) msgParts() []string {
	var one string
	if err := json.Unmarshal(s.Msg, &one); err == nil {
		return []string{one}
	}

	var many []json.RawMessage
	if err := json.Unmarshal(s.Msg, &many); err != nil {
		return nil
	}
	parts := make([]string, 0, len(many))
	for _, m := range many {
		var sp string
		if err := json.Unmarshal(m, &sp); err == nil {
			parts = append(parts, sp)
			continue
		}
		parts = append(parts, string(m))
	}
	return parts
}

func (s apiStatus) message() string {
	if parts := s.msgParts(); len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "status " + s.Type
}

// payload decodes the request echo at log index 3.
func (s apiStatus) payload() logPayload {
	var p logPayload
	if len(s.Log) > 3 {
		_ = json.Unmarshal(s.Log[3], &p)
	}
	return p
}

// logPayload is the request echo inside a mutation response log.
type logPayload struct {
	ID            idList `json:"id"`
	Address       string `json:"address"`
	PublicComment string `json:"public_comment"`
}

// idList accepts a scalar or an array of bare or quoted integers.
type idList []int

func (l *idList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		raw = []json.RawMessage{b}
	}
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		var n intish
		if err := n.UnmarshalJSON(r); err != nil {
			return err
		}
		out = append(out, int(n))
	}
	*l = out
	return nil
}

// mutationResult validates a mutation response and assembles the summary
// from its first element. The alias ID comes from the request echo for
// edits and deletes, and from the message for creations.
func mutationResult(body []byte) (Result, error) {
	var statuses []apiStatus
	if err := json.Unmarshal(body, &statuses); err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}
	if len(statuses) == 0 {
		return Result{}, fmt.Errorf("empty response")
	}
	for _, s := range statuses {
		if !s.ok() {
			return Result{}, fmt.Errorf("api: %s", s.message())
		}
	}

	st := statuses[0]
	parts := st.msgParts()
	payload := st.payload()

	res := Result{Comment: payload.PublicComment}
	if len(parts) > 1 {
		res.Address = parts[1]
	}
	if len(payload.ID) > 0 {
		res.ID = payload.ID[0]
	} else if len(parts) > 2 {
		if v, err := strconv.Atoi(parts[2]); err == nil {
			res.ID = v
		}
	}
	return res, nil
}
