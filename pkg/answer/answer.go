// Package answer assembles the parameters of an answerInlineQuery call from
// inline content. Sending the request is left to the caller's bot client.
package answer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"

	"github.com/tinyland-inc/inlinecontent/pkg/config"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
	"github.com/tinyland-inc/inlinecontent/pkg/utils"
)

// MaxResults is the Bot API limit on results per inline query answer.
const MaxResults = 50

var (
	ErrEmptyContent   = errors.New("content has no fields set")
	ErrDuplicateID    = errors.New("duplicate result id")
	ErrTooManyResults = fmt.Errorf("more than %d results", MaxResults)
	ErrMissingTitle   = errors.New("result title is required")
	ErrMissingQueryID = errors.New("inline query id is required")
)

// Article is an article result carrying inline content.
type Article struct {
	// ID is generated when empty.
	ID          string
	Title       string
	Description string
	Content     content.InlineContent
}

// Result is one article in the answer payload. InputMessageContent is the
// content itself, so the payload carries exactly the fields that were set.
type Result struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	InputMessageContent content.InlineContent `json:"input_message_content"`
	Description         string                `json:"description,omitempty"`
}

// Params are the answerInlineQuery parameters.
type Params struct {
	InlineQueryID string   `json:"inline_query_id"`
	Results       []Result `json:"results"`
	CacheTime     int      `json:"cache_time,omitempty"`
	IsPersonal    bool     `json:"is_personal,omitempty"`
}

type Builder struct {
	cfg     config.AnswerConfig
	results []Result
	ids     map[string]struct{}
}

func NewBuilder(cfg config.AnswerConfig) *Builder {
	return &Builder{
		cfg: cfg,
		ids: make(map[string]struct{}),
	}
}

// AddArticle validates a and appends it to the answer. It returns the
// result ID that was used.
func (b *Builder) AddArticle(a Article) (string, error) {
	if strings.TrimSpace(a.Title) == "" {
		return "", ErrMissingTitle
	}
	if a.Content == nil {
		return "", fmt.Errorf("article %q: content is required", a.Title)
	}
	if b.cfg.RejectEmpty && len(a.Content.Fields()) == 0 {
		return "", fmt.Errorf("article %q: %s content: %w", a.Title, a.Content.Kind(), ErrEmptyContent)
	}
	if len(b.results) >= MaxResults {
		return "", ErrTooManyResults
	}

	id := a.ID
	if id == "" {
		id = uuid.New().String()
	}
	if err := utils.ValidateResultID(id); err != nil {
		return "", fmt.Errorf("article %q: %w", a.Title, err)
	}
	if _, dup := b.ids[id]; dup {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	b.results = append(b.results, Result{
		Type:                telego.ResultTypeArticle,
		ID:                  id,
		Title:               a.Title,
		InputMessageContent: a.Content,
		Description:         a.Description,
	})
	b.ids[id] = struct{}{}

	logger.DebugCF("answer", "Result added", map[string]any{
		"id":     id,
		"kind":   a.Content.Kind(),
		"fields": len(a.Content.Fields()),
	})
	return id, nil
}

func (b *Builder) Len() int {
	return len(b.results)
}

// Params returns the answerInlineQuery parameters for queryID.
func (b *Builder) Params(queryID string) (*Params, error) {
	if queryID == "" {
		return nil, ErrMissingQueryID
	}

	results := make([]Result, len(b.results))
	copy(results, b.results)

	return &Params{
		InlineQueryID: queryID,
		Results:       results,
		CacheTime:     b.cfg.CacheTime,
		IsPersonal:    b.cfg.IsPersonal,
	}, nil
}

// TelegoParams returns the same answer as telego parameters, ready for a
// telego bot client. Content that leaves a field the Bot API requires unset
// is rejected, see content.ToTelego.
func (b *Builder) TelegoParams(queryID string) (*telego.AnswerInlineQueryParams, error) {
	if queryID == "" {
		return nil, ErrMissingQueryID
	}

	results := make([]telego.InlineQueryResult, 0, len(b.results))
	for _, r := range b.results {
		msg, err := content.ToTelego(r.InputMessageContent)
		if err != nil {
			logger.WarnCF("answer", "Result not representable in telego", map[string]any{
				"id":    r.ID,
				"error": err.Error(),
			})
			return nil, fmt.Errorf("result %q: %w", r.ID, err)
		}
		results = append(results, &telego.InlineQueryResultArticle{
			Type:                r.Type,
			ID:                  r.ID,
			Title:               r.Title,
			Description:         r.Description,
			InputMessageContent: msg,
		})
	}

	return &telego.AnswerInlineQueryParams{
		InlineQueryID: queryID,
		Results:       results,
		CacheTime:     b.cfg.CacheTime,
		IsPersonal:    b.cfg.IsPersonal,
	}, nil
}
