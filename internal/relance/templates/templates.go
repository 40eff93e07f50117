// Package templates resolves and personalizes the message of a relance day.
//
// Resolution is two-tier. A campaign's own message for the day wins when it
// has at least one language variant; otherwise the active global template of
// the day is used. Personalization renders the chosen language variant as a
// Liquid template with the variables name, referrerName and day.
package templates

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"relance-server/internal/store"

	"github.com/osteele/liquid"
)

// DefaultLanguage is used when the recipient's language has no variant.
const DefaultLanguage = "fr"

const (
	SourceCampaign = "campaign"
	SourceGlobal   = "global"
)

var (
	ErrNoTemplate      = errors.New("no message template for day")
	ErrInvalidTemplate = errors.New("invalid message template")
)

// TemplateStore reads global day templates
type TemplateStore interface {
	GetMessageTemplateByDay(ctx context.Context, day int) (store.MessageTemplate, error)
}

// Content is the resolved, not yet personalized, message of a day
type Content struct {
	Source    string
	Day       int
	Messages  map[string]string
	MediaURLs []string
}

// Vars are the personalization variables
type Vars struct {
	Name         string
	ReferrerName string
	Day          int
}

type Resolver struct {
	store TemplateStore
}

func NewResolver(store TemplateStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve picks the content for day. campaign is nil for the default loop.
func (r *Resolver) Resolve(ctx context.Context, campaign *store.RelanceCampaign, day int) (Content, error) {
	if campaign != nil {
		if custom, ok := campaign.CustomMessages.ForDay(day); ok {
			return Content{
				Source:    SourceCampaign,
				Day:       day,
				Messages:  custom.Messages,
				MediaURLs: custom.MediaURLs,
			}, nil
		}
	}

	tpl, err := r.store.GetMessageTemplateByDay(ctx, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Content{}, fmt.Errorf("%w %d", ErrNoTemplate, day)
		}
		return Content{}, err
	}
	if !tpl.Active || len(tpl.Messages) == 0 {
		return Content{}, fmt.Errorf("%w %d", ErrNoTemplate, day)
	}
	return Content{
		Source:    SourceGlobal,
		Day:       day,
		Messages:  tpl.Messages,
		MediaURLs: tpl.MediaURLs,
	}, nil
}

// PickLanguage returns the variant for lang, falling back to its base
// language, then DefaultLanguage, then English, then the first key.
func PickLanguage(messages map[string]string, lang string) (string, string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	candidates := []string{lang}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		candidates = append(candidates, lang[:i])
	}
	candidates = append(candidates, DefaultLanguage, "en")
	for _, c := range candidates {
		if body, ok := messages[c]; ok && body != "" {
			return c, body
		}
	}

	keys := make([]string, 0, len(messages))
	for k, v := range messages {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", ""
	}
	sort.Strings(keys)
	return keys[0], messages[keys[0]]
}

// Personalizer renders message bodies with Liquid
type Personalizer struct {
	engine *liquid.Engine
	cache  sync.Map // body -> *liquid.Template
}

func NewPersonalizer() *Personalizer {
	return &Personalizer{engine: liquid.NewEngine()}
}

// Validate checks that body parses as a template
func (p *Personalizer) Validate(body string) error {
	if _, err := p.engine.ParseString(body); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err.Error())
	}
	return nil
}

// Render substitutes vars into body
func (p *Personalizer) Render(body string, vars Vars) (string, error) {
	var tpl *liquid.Template
	if cached, ok := p.cache.Load(body); ok {
		tpl = cached.(*liquid.Template)
	} else {
		parsed, err := p.engine.ParseString(body)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err.Error())
		}
		p.cache.Store(body, parsed)
		tpl = parsed
	}

	out, err := tpl.RenderString(map[string]interface{}{
		"name":         vars.Name,
		"referrerName": vars.ReferrerName,
		"day":          vars.Day,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render message: %s", err.Error())
	}
	return out, nil
}

// Personalize picks the recipient's language variant of content and renders it
func (p *Personalizer) Personalize(content Content, lang string, vars Vars) (string, error) {
	_, body := PickLanguage(content.Messages, lang)
	if body == "" {
		return "", fmt.Errorf("%w %d", ErrNoTemplate, content.Day)
	}
	return p.Render(body, vars)
}
