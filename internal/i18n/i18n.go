// Package i18n renders the spoken prompts of the voting flow from embedded
// YAML locale files using go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message IDs used by the voting flow.
const (
	MsgAnnouncePosition      = "voting.announce_position"
	MsgAnnounceCandidate     = "voting.announce_candidate"
	MsgAnnounceInstruction   = "voting.announce_instruction"
	MsgCandidateSelected     = "voting.candidate_selected"
	MsgSelectionRequired     = "voting.selection_required"
	MsgConfirmSelections     = "voting.confirm_selections"
	MsgSayPassphrase         = "voting.say_passphrase"
	MsgStartOver             = "voting.start_over"
	MsgVerificationFailed    = "voting.verification_failed"
	MsgVerificationExhausted = "voting.verification_exhausted"
	MsgVoteSuccess           = "voting.vote_success"
	MsgVoteFailed            = "voting.vote_failed"
	MsgVoterNotRecognised    = "voting.voter_not_recognised"
	MsgNoVoiceSample         = "voice.no_sample"
	MsgVerificationSuccess   = "voice.verification_success"
	MsgVerificationRejected  = "voice.verification_rejected"
)

// maxCachedLocalizers bounds the cache keyed by raw Accept-Language values
const maxCachedLocalizers = 64

// Translator localizes message IDs. It is safe for concurrent use.
type Translator struct {
	bundle      *i18n.Bundle
	defaultLang string

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
}

// New loads every embedded locale. defaultLang is used when a request does
// not ask for a language.
func New(defaultLang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	if defaultLang == "" {
		defaultLang = language.English.String()
	}
	return &Translator{
		bundle:      bundle,
		defaultLang: defaultLang,
		localizers:  make(map[string]*i18n.Localizer),
	}, nil
}

// MustNew is New for static initialization in tests and commands.
func MustNew(defaultLang string) *Translator {
	t, err := New(defaultLang)
	if err != nil {
		panic(err)
	}
	return t
}

// Languages lists the tags of all loaded locales.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

func (t *Translator) localizer(acceptLanguage string) *i18n.Localizer {
	key := acceptLanguage
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.localizers[key]; ok {
		return l
	}
	langs := []string{t.defaultLang}
	if acceptLanguage != "" {
		langs = append([]string{acceptLanguage}, langs...)
	}
	l := i18n.NewLocalizer(t.bundle, langs...)
	if len(t.localizers) < maxCachedLocalizers {
		t.localizers[key] = l
	}
	return l
}

// T translates a message for the given Accept-Language value. data fills the
// message template. If the ID is unknown the ID itself is returned.
func (t *Translator) T(acceptLanguage, messageID string, data map[string]interface{}) string {
	msg, err := t.localizer(acceptLanguage).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Plural translates a message that varies with count.
func (t *Translator) Plural(acceptLanguage, messageID string, count int, data map[string]interface{}) string {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Count"] = count
	msg, err := t.localizer(acceptLanguage).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		return messageID
	}
	return msg
}
