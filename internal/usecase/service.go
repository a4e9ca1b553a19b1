// Package usecase orchestrates the classification pipeline: answer
// normalization, axis scoring, tag extraction, blending, the refinement
// decision and the AI calls with their deterministic fallbacks.
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avenira/orient-api/internal/adapter/observability"
	"github.com/avenira/orient-api/internal/answers"
	"github.com/avenira/orient-api/internal/config"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/pkg/textx"
)

// Classification sources reported on responses and audit rows.
const (
	SourceAI            = "ai"
	SourceDeterministic = "deterministic"
	SourceAIDisabled    = "ai_disabled"
)

// Description length ceilings, in characters. The sector description is the
// long-form product surface; the job description is a compact card.
const (
	maxSectorDescription = 520
	maxJobDescription    = 234
)

// Service bundles the dependencies shared by both classification flows.
type Service struct {
	cfg   config.Config
	ai    domain.AIClient
	quota domain.QuotaStore
	cache domain.DescriptionCache
	repo  domain.ClassificationRepository
}

// New constructs the classification service. The AI client may be nil when
// AI is disabled; the other dependencies are required.
func New(cfg config.Config, ai domain.AIClient, quota domain.QuotaStore, cache domain.DescriptionCache, repo domain.ClassificationRepository) Service {
	return Service{cfg: cfg, ai: ai, quota: quota, cache: cache, repo: repo}
}

func (s Service) aiEnabled() bool { return s.cfg.AIEnabled && s.ai != nil }

// reserveQuota enforces the daily AI ceilings. One unit covers all the AI
// calls of a single classification request. Quota exhaustion is the one
// condition under which the engine declines to classify.
func (s Service) reserveQuota(ctx domain.Context, userID string) error {
	ok, err := s.quota.Allow(ctx, userID)
	if err != nil {
		// Fail open: a broken quota store must not take classification down.
		slog.Warn("quota check failed, allowing", slog.Any("error", err))
		return nil
	}
	if !ok {
		observability.QuotaRejectionsTotal.WithLabelValues("daily").Inc()
		return fmt.Errorf("%w: daily AI quota exhausted", domain.ErrQuotaExceeded)
	}
	return nil
}

// chatJSONInto performs one AI call and decodes the response into out. A
// malformed document gets exactly one retry with an amended prompt.
func (s Service) chatJSONInto(ctx domain.Context, system, user string, maxTokens int, out any) error {
	raw, err := s.ai.ChatJSON(ctx, system, user, maxTokens)
	if err == nil {
		if uerr := json.Unmarshal([]byte(raw), out); uerr == nil {
			return nil
		}
		slog.Warn("ai response failed schema decode, retrying amended", slog.String("body", raw))
	} else if ctx.Err() != nil {
		return err
	}
	raw, err = s.ai.ChatJSON(ctx, system+strictJSONReminder, user, maxTokens)
	if err != nil {
		return err
	}
	if uerr := json.Unmarshal([]byte(raw), out); uerr != nil {
		return fmt.Errorf("%w: %v", domain.ErrSchemaInvalid, uerr)
	}
	return nil
}

// describe resolves the user-facing description for a picked category:
// cache first, then an AI rewrite, then the static catalog text. Never
// fails; the static text is always available.
func (s Service) describe(ctx domain.Context, kind, id, name, staticText string, maxLen int) string {
	key := descriptionKey(kind, id)

	cctx, cancel := withTimeout(ctx, s.cfg.CacheTimeout)
	cached, hit, err := s.cache.Get(cctx, key)
	cancel()
	if err != nil {
		slog.Warn("description cache get failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit && cached != "" {
		return cached
	}

	text := staticText
	if s.aiEnabled() {
		system, user := describePrompts(kind, id, name, staticText)
		actx, cancel := withTimeout(ctx, s.cfg.AIDescribeTimeout)
		var out struct {
			Description string `json:"description"`
		}
		err := s.chatJSONInto(actx, system, user, 300, &out)
		cancel()
		if err == nil && out.Description != "" {
			text = out.Description
		} else if err != nil {
			slog.Warn("description rewrite failed, using static text",
				slog.String("kind", kind), slog.String("id", id), slog.Any("error", err))
		}
	}
	text = trimDescription(text, maxLen)

	sctx, cancel := withTimeout(ctx, s.cfg.CacheTimeout)
	if err := s.cache.Set(sctx, key, text, s.cfg.DescriptionTTL); err != nil {
		slog.Warn("description cache set failed", slog.String("key", key), slog.Any("error", err))
	}
	cancel()
	return text
}

// persist writes the audit row. Best effort: a failed write is logged and
// never blocks the response.
func (s Service) persist(ctx domain.Context, c domain.Classification) {
	if c.RequestID == "" {
		return
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, c); err != nil {
		slog.Error("classification audit write failed",
			slog.String("request_id", c.RequestID), slog.Any("error", err))
	}
}

// trimDescription keeps whole sentences under the ceiling so end users
// never see a sentence cut mid-way.
func trimDescription(s string, maxLen int) string {
	return textx.TrimSentences(textx.SanitizeText(s), maxLen)
}

func descriptionKey(kind, id string) string {
	h := sha256.Sum256([]byte(kind + "|" + id))
	return "desc:" + hex.EncodeToString(h[:])
}

// answerTexts flattens raw answers to the free-text form consumed by the
// axis builder.
func answerTexts(raw map[string]any) map[string]string {
	norm := answers.Normalize(raw)
	out := make(map[string]string, len(norm))
	for id, l := range norm {
		a := answers.Answer{Kind: answers.KindLabeled, Label: l.Label, Value: l.Value}
		out[id] = answers.FreeText(a)
	}
	return out
}

// normalizeBase rescales a deterministic ranking into the same [0,1] band
// an AI ranking uses, so the blend multipliers keep their meaning whichever
// source produced the base list.
func normalizeBase(ranked []domain.RankedCategory) []domain.RankedCategory {
	var top float64
	for _, rc := range ranked {
		if rc.Score > top {
			top = rc.Score
		}
	}
	out := make([]domain.RankedCategory, len(ranked))
	for i, rc := range ranked {
		score := 0.0
		if top > 0 && rc.Score > 0 {
			score = rc.Score / top
		}
		out[i] = domain.RankedCategory{ID: rc.ID, Score: score}
	}
	return out
}

func withTimeout(ctx domain.Context, d time.Duration) (domain.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
