package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/classifier"
	"mindcare/backend/pkg/errors"
	"mindcare/backend/pkg/logger"
	"mindcare/backend/pkg/responder"
	"mindcare/backend/pkg/rules"
)

// stubScorer returns a fixed score so pipeline tests stay deterministic
type stubScorer struct {
	score float64
}

func (s stubScorer) Score(string) float64 { return s.score }

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) Generate(context.Context, string) (string, error) {
	return g.reply, g.err
}

// failingStore makes AppendMessage fail while delegating everything else
type failingStore struct {
	store.EventStore
}

func (failingStore) AppendMessage(*models.Message) error {
	return fmt.Errorf("disk full")
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func newChatService(st store.EventStore, score float64, gen responder.Generator) *ChatService {
	rs := rules.Default()
	return NewChatService(
		st,
		stubScorer{score: score},
		classifier.New(rs.CrisisKeywords, -0.6),
		responder.NewSelector(rs),
		gen,
		testLogger(),
	)
}

func TestProcessMessageStoresBothSides(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.3, nil)

	ex, err := svc.ProcessMessage(context.Background(), "I am so stressed and anxious about exams")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, ex.UserMessage.Role)
	assert.Equal(t, models.RoleBot, ex.BotMessage.Role)
	assert.Greater(t, ex.BotMessage.ID, ex.UserMessage.ID)
	assert.Equal(t, responder.CategoryStress, ex.Category)
	assert.False(t, ex.Classification.IsCrisis)
	assert.Equal(t, rules.Default().Replies["stress"], ex.BotMessage.Text)

	history, err := svc.History(10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ex.UserMessage.ID, history[0].ID)
	assert.Equal(t, ex.BotMessage.ID, history[1].ID)
}

func TestProcessMessageCrisisKeyword(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.2, nil)

	ex, err := svc.ProcessMessage(context.Background(), "I want to end my life")
	require.NoError(t, err)

	assert.True(t, ex.Classification.IsCrisis)
	assert.Equal(t, classifier.TriggerKeyword, ex.Classification.Trigger)
	assert.Equal(t, responder.CategoryCrisis, ex.Category)
	assert.True(t, ex.UserMessage.IsCrisis)
	assert.Contains(t, ex.BotMessage.Text, rules.Default().CrisisFooter)
}

func TestProcessMessageCrisisSentimentFloor(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, -0.8, nil)

	ex, err := svc.ProcessMessage(context.Background(), "nothing matters anymore")
	require.NoError(t, err)

	assert.True(t, ex.Classification.IsCrisis)
	assert.Equal(t, classifier.TriggerSentimentThreshold, ex.Classification.Trigger)
	assert.Contains(t, ex.BotMessage.Text, rules.Default().CrisisFooter)
}

func TestProcessMessageClassifiesBeforeTruncation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.1, nil)

	// The keyword sits past the storage bound; classification must still see
	// it, while the stored text is clipped.
	text := strings.Repeat("a", models.MaxMessageLen+10) + " I want to end my life"
	ex, err := svc.ProcessMessage(context.Background(), text)
	require.NoError(t, err)

	assert.True(t, ex.Classification.IsCrisis)
	assert.True(t, ex.UserMessage.IsCrisis)
	assert.Len(t, []rune(ex.UserMessage.Text), models.MaxMessageLen)
	assert.NotContains(t, ex.UserMessage.Text, "end my life")
}

func TestProcessMessageGeneratorReply(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.3, stubGenerator{reply: "a generated reply"})

	ex, err := svc.ProcessMessage(context.Background(), "how do I handle deadlines")
	require.NoError(t, err)

	assert.Equal(t, "a generated reply", ex.BotMessage.Text)
}

func TestProcessMessageGeneratorFallsBackOnError(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.3, stubGenerator{err: responder.ErrUnavailable})

	ex, err := svc.ProcessMessage(context.Background(), "I am so stressed out")
	require.NoError(t, err)

	assert.Equal(t, rules.Default().Replies["stress"], ex.BotMessage.Text)
}

func TestProcessMessageGeneratorCrisisStillGetsFooter(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, 0.0, stubGenerator{reply: "please reach out to someone you trust"})

	ex, err := svc.ProcessMessage(context.Background(), "I keep thinking about suicide")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ex.BotMessage.Text, "please reach out to someone you trust"))
	assert.Contains(t, ex.BotMessage.Text, rules.Default().CrisisFooter)
}

func TestProcessMessageStorageFailure(t *testing.T) {
	svc := newChatService(failingStore{store.NewMemoryStore()}, 0.3, nil)

	_, err := svc.ProcessMessage(context.Background(), "hello")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeStorageWriteFailed, appErr.Code)
}

func TestProcessMessageBotRowIsNeutralAndUnflagged(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newChatService(st, -0.9, nil)

	ex, err := svc.ProcessMessage(context.Background(), "everything hurts")
	require.NoError(t, err)

	assert.Equal(t, 0.0, ex.BotMessage.Sentiment)
	assert.False(t, ex.BotMessage.IsCrisis)
}
