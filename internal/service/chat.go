package service

import (
	"context"
	"fmt"

	"shopchat/internal/model"

	"github.com/rs/zerolog"
)

// Chat reply messages
const (
	msgNoProducts      = "I couldn't find any products matching your description."
	msgRephraseHint    = " You can try rephrasing your query or being more general."
	msgNoIntentHint    = " Please try asking about specific product categories, price ranges, or keywords."
	msgFoundProductsFm = "Found %d products matching your query."
)

// ChatReply is the outcome of one chat message
type ChatReply struct {
	Message string
	Result  model.ChatResult
}

// ChatService answers free-text product questions
type ChatService struct {
	parser   IntentParser
	products ProductStore
	log      zerolog.Logger
}

// NewChatService creates a new chat service
func NewChatService(parser IntentParser, products ProductStore, log zerolog.Logger) *ChatService {
	return &ChatService{
		parser:   parser,
		products: products,
		log:      log.With().Str("component", "chat").Logger(),
	}
}

// Reply parses message into an intent, runs the matching product query and
// phrases the answer. Finding nothing is not an error, and a message with
// no recognisable words searches the whole catalog.
func (s *ChatService) Reply(ctx context.Context, userID int64, message string) (*ChatReply, error) {
	intent := s.parser.Parse(message)

	products, err := s.products.QueryProducts(ctx, intent.Filter())
	if err != nil {
		return nil, fmt.Errorf("chat product query: %w", err)
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("message", message).
		Interface("intent", intent).
		Int("results", len(products)).
		Msg("chat query handled")

	return &ChatReply{
		Message: replyMessage(intent, len(products)),
		Result: model.ChatResult{
			Products:      products,
			OriginalQuery: message,
			ParsedIntent:  intent,
		},
	}, nil
}

func replyMessage(intent model.Intent, found int) string {
	if found > 0 {
		return fmt.Sprintf(msgFoundProductsFm, found)
	}
	if intent.IsEmpty() {
		return msgNoProducts + msgNoIntentHint
	}
	return msgNoProducts + msgRephraseHint
}
