// Package voice turns recognized speech into commands for the voting flow and
// talks to the voice model service that verifies speakers.
package voice

import "strings"

// CommandKind identifies what a recognized utterance asks for.
type CommandKind string

const (
	KindNavigate        CommandKind = "navigate"
	KindSelectCandidate CommandKind = "select_candidate"
	KindConfirm         CommandKind = "confirm"
	KindPassphrase      CommandKind = "passphrase"
)

// Client routes understood by the dispatcher.
const (
	RouteDashboard = "/dashboard"
	RouteVoting    = "/voting"
	RouteResults   = "/results"
	RouteFeedback  = "/feedback"
)

// DefaultPassphrase is the phrase spoken for voice verification.
const DefaultPassphrase = "i love my university"

// Command is one dispatched action.
type Command struct {
	Kind           CommandKind `json:"kind"`
	Route          string      `json:"route,omitempty"`
	CandidateIndex int         `json:"candidate_index"`
	Confirmed      bool        `json:"confirmed"`
	Phrase         string      `json:"phrase,omitempty"`
}

type rule struct {
	phrases []string
	command Command
}

func (r rule) matches(utterance string) bool {
	for _, p := range r.phrases {
		if strings.Contains(utterance, p) {
			return true
		}
	}
	return false
}

// Dispatcher matches utterances against ordered phrase tables. Matching is
// case-insensitive substring search and the first matching rule of a table wins,
// so an utterance with several keywords resolves to the earliest rule.
type Dispatcher struct {
	navigation []rule
	voting     []rule
}

// NewDispatcher builds the phrase tables. An empty passphrase uses DefaultPassphrase.
func NewDispatcher(passphrase string) *Dispatcher {
	passphrase = strings.ToLower(strings.TrimSpace(passphrase))
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	passphrases := []string{passphrase}
	if short := strings.TrimPrefix(passphrase, "i "); short != passphrase {
		passphrases = append(passphrases, short)
	}

	return &Dispatcher{
		navigation: []rule{
			{phrases: []string{"navigate to dashboard", "go to dashboard"}, command: Command{Kind: KindNavigate, Route: RouteDashboard}},
			{phrases: []string{"navigate to voting", "go to voting"}, command: Command{Kind: KindNavigate, Route: RouteVoting}},
			{phrases: []string{"navigate to results", "go to results"}, command: Command{Kind: KindNavigate, Route: RouteResults}},
			{phrases: []string{"navigate to feedback", "go to feedback"}, command: Command{Kind: KindNavigate, Route: RouteFeedback}},
		},
		voting: []rule{
			{phrases: []string{"one", "1", "first"}, command: Command{Kind: KindSelectCandidate, CandidateIndex: 0}},
			{phrases: []string{"two", "2", "second"}, command: Command{Kind: KindSelectCandidate, CandidateIndex: 1}},
			{phrases: []string{"three", "3", "third"}, command: Command{Kind: KindSelectCandidate, CandidateIndex: 2}},
			{phrases: []string{"four", "4", "fourth"}, command: Command{Kind: KindSelectCandidate, CandidateIndex: 3}},
			{phrases: []string{"yes", "confirm", "correct"}, command: Command{Kind: KindConfirm, Confirmed: true}},
			{phrases: []string{"no", "incorrect", "wrong"}, command: Command{Kind: KindConfirm, Confirmed: false}},
			{phrases: passphrases, command: Command{Kind: KindPassphrase, Phrase: passphrase}},
		},
	}
}

// Dispatch returns the commands for one finalized utterance heard on
// currentRoute. Navigation is checked on every route; the voting chain only
// on the voting route. Both may fire for the same utterance.
func (d *Dispatcher) Dispatch(utterance, currentRoute string) []Command {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return nil
	}

	var commands []Command
	if cmd, ok := firstMatch(d.navigation, normalized); ok {
		commands = append(commands, cmd)
	}
	if currentRoute == RouteVoting {
		if cmd, ok := firstMatch(d.voting, normalized); ok {
			commands = append(commands, cmd)
		}
	}
	return commands
}

func firstMatch(rules []rule, utterance string) (Command, bool) {
	for _, r := range rules {
		if r.matches(utterance) {
			return r.command, true
		}
	}
	return Command{}, false
}
