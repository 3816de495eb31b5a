package service

import (
	"context"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/classifier"
	"mindcare/backend/pkg/errors"
	"mindcare/backend/pkg/logger"
	"mindcare/backend/pkg/metrics"
	"mindcare/backend/pkg/responder"
	"mindcare/backend/pkg/sentiment"
)

// Exchange is the outcome of one processed user message
type Exchange struct {
	UserMessage    models.Message     `json:"user_message"`
	BotMessage     models.Message     `json:"bot_message"`
	Classification classifier.Result  `json:"classification"`
	Category       responder.Category `json:"category"`
}

// ChatService runs the message pipeline: score, classify, select a response
// strategy, persist, reply. The service itself is stateless; all state lives
// in the EventStore it is given.
type ChatService struct {
	store      store.EventStore
	scorer     sentiment.Scorer
	classifier *classifier.Classifier
	selector   *responder.Selector
	generator  responder.Generator // optional; nil disables generative replies
	log        *logger.Logger
}

// NewChatService wires the pipeline. generator may be nil.
func NewChatService(
	st store.EventStore,
	scorer sentiment.Scorer,
	cls *classifier.Classifier,
	sel *responder.Selector,
	gen responder.Generator,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		store:      st,
		scorer:     scorer,
		classifier: cls,
		selector:   sel,
		generator:  gen,
		log:        log.WithComponent("chat"),
	}
}

// ProcessMessage handles one incoming user message end to end. Classification
// runs on the full raw text; the store truncates for persistence afterwards.
// A storage failure is the only fatal outcome.
func (s *ChatService) ProcessMessage(ctx context.Context, text string) (*Exchange, error) {
	score := s.scorer.Score(text)
	result := s.classifier.Classify(text, score)
	category := s.selector.Select(text, score, result.IsCrisis)

	userMsg := models.Message{
		Role:      models.RoleUser,
		Text:      text,
		Sentiment: result.Sentiment,
		IsCrisis:  result.IsCrisis,
	}
	if err := s.store.AppendMessage(&userMsg); err != nil {
		return nil, errors.NewStorageWriteError(err)
	}

	if result.IsCrisis {
		s.log.Warn("crisis message flagged",
			"trigger", result.Trigger,
			"matched_keyword", result.MatchedKeyword,
			"sentiment", result.Sentiment,
			"message_id", userMsg.ID,
		)
		metrics.CrisisDetected.WithLabelValues(string(result.Trigger)).Inc()
	}
	metrics.MessagesProcessed.WithLabelValues(string(category)).Inc()

	reply := s.reply(ctx, text, category)
	reply = s.selector.Finalize(reply, result.IsCrisis)

	botMsg := models.Message{
		Role:      models.RoleBot,
		Text:      reply,
		Sentiment: 0,
	}
	if err := s.store.AppendMessage(&botMsg); err != nil {
		return nil, errors.NewStorageWriteError(err)
	}

	return &Exchange{
		UserMessage:    userMsg,
		BotMessage:     botMsg,
		Classification: result,
		Category:       category,
	}, nil
}

// reply asks the generative responder first and falls back to the rule-based
// reply on any failure. The user always gets a normal reply either way.
func (s *ChatService) reply(ctx context.Context, text string, category responder.Category) string {
	if s.generator == nil {
		return s.selector.BaseReply(category)
	}

	generated, err := s.generator.Generate(ctx, text)
	if err != nil {
		s.log.Warn("generative responder unavailable, using rule-based reply", "error", err.Error())
		metrics.ResponderFallback.Inc()
		return s.selector.BaseReply(category)
	}
	return generated
}

// History returns the most recent limit messages, oldest first
func (s *ChatService) History(limit int) ([]models.Message, error) {
	return s.store.RecentMessages(limit)
}
