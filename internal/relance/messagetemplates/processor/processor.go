package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"relance-server/internal/observability"
	"relance-server/internal/relance/templates"
	"relance-server/internal/relance/transport"
	"relance-server/internal/store"
)

// MessageTemplateStore defines the database operations required by MessageTemplateProcessor
type MessageTemplateStore interface {
	ListMessageTemplates(ctx context.Context) ([]store.MessageTemplate, error)
	GetMessageTemplateByDay(ctx context.Context, day int) (store.MessageTemplate, error)
	UpsertMessageTemplate(ctx context.Context, params store.UpsertMessageTemplateParams) (store.MessageTemplate, error)
	DeleteMessageTemplate(ctx context.Context, day int) error
}

var (
	ErrTemplateNotFound = errors.New("message template not found")
	ErrInvalidDay       = errors.New("day must be between 1 and 7")
	ErrEmptyTemplate    = errors.New("message template needs at least one language")
	ErrTestSendFailed   = errors.New("failed to send test message")
)

type MessageTemplateProcessor struct {
	store        MessageTemplateStore
	personalizer *templates.Personalizer
	sender       transport.Sender
	logger       *observability.Logger
}

func New(store MessageTemplateStore, personalizer *templates.Personalizer, sender transport.Sender, logger *observability.Logger) MessageTemplateProcessor {
	return MessageTemplateProcessor{
		store:        store,
		personalizer: personalizer,
		sender:       sender,
		logger:       logger,
	}
}

// UpsertTemplateParams is the full content of one day's template
type UpsertTemplateParams struct {
	Name      string
	Messages  map[string]string
	MediaURLs []string
	Active    bool
}

// SendTestParams addresses a rendered test message
type SendTestParams struct {
	Channel  string
	Phone    string
	Email    string
	Language string
	Vars     templates.Vars
}

func (p *MessageTemplateProcessor) ListTemplates(ctx context.Context) ([]store.MessageTemplate, error) {
	tpls, err := p.store.ListMessageTemplates(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list message templates", err)
		return nil, err
	}
	if tpls == nil {
		tpls = []store.MessageTemplate{}
	}
	return tpls, nil
}

func (p *MessageTemplateProcessor) GetTemplate(ctx context.Context, day int) (store.MessageTemplate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: day})
	if err := validateDay(day); err != nil {
		return store.MessageTemplate{}, err
	}
	tpl, err := p.store.GetMessageTemplateByDay(ctx, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get message template", err)
		return store.MessageTemplate{}, err
	}
	return tpl, nil
}

// UpsertTemplate creates or replaces the template of day after checking every
// language variant parses
func (p *MessageTemplateProcessor) UpsertTemplate(ctx context.Context, day int, params UpsertTemplateParams) (store.MessageTemplate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: day})
	if err := validateDay(day); err != nil {
		return store.MessageTemplate{}, err
	}
	if len(params.Messages) == 0 {
		return store.MessageTemplate{}, ErrEmptyTemplate
	}
	for lang, body := range params.Messages {
		if err := p.personalizer.Validate(body); err != nil {
			return store.MessageTemplate{}, fmt.Errorf("%s: %w", lang, err)
		}
	}

	tpl, err := p.store.UpsertMessageTemplate(ctx, store.UpsertMessageTemplateParams{
		Day:       day,
		Name:      params.Name,
		Messages:  store.Translations(params.Messages),
		MediaURLs: params.MediaURLs,
		Active:    params.Active,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert message template", err)
		return store.MessageTemplate{}, err
	}
	p.logger.Info(ctx, "message template saved")
	return tpl, nil
}

func (p *MessageTemplateProcessor) DeleteTemplate(ctx context.Context, day int) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: day})
	if err := validateDay(day); err != nil {
		return err
	}
	if err := p.store.DeleteMessageTemplate(ctx, day); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to delete message template", err)
		return err
	}
	p.logger.Info(ctx, "message template deleted")
	return nil
}

// SendTestMessage renders the template of day with the given variables and
// sends it to the given recipient. Nothing is recorded.
func (p *MessageTemplateProcessor) SendTestMessage(ctx context.Context, day int, params SendTestParams) error {
	tpl, err := p.GetTemplate(ctx, day)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: day},
		observability.Field{Key: "channel", Value: params.Channel})

	if params.Vars.Day == 0 {
		params.Vars.Day = day
	}
	body, err := p.personalizer.Personalize(templates.Content{
		Source:    templates.SourceGlobal,
		Day:       day,
		Messages:  tpl.Messages,
		MediaURLs: tpl.MediaURLs,
	}, params.Language, params.Vars)
	if err != nil {
		return err
	}

	_, err = p.sender.Send(ctx, transport.Message{
		Channel:   params.Channel,
		Phone:     params.Phone,
		Email:     params.Email,
		Body:      body,
		MediaURLs: tpl.MediaURLs,
		Day:       day,
	})
	if err != nil {
		if errors.Is(err, transport.ErrUnsupportedChannel) || errors.Is(err, transport.ErrNoRecipient) {
			return err
		}
		p.logger.Error(ctx, "failed to send test message", err)
		return fmt.Errorf("%w: %v", ErrTestSendFailed, err)
	}
	p.logger.Info(ctx, "test message sent")
	return nil
}

func validateDay(day int) error {
	if day < 1 || day > store.LoopLength {
		return ErrInvalidDay
	}
	return nil
}
