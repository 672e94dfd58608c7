package tts

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"

	"tts-generator/internal/logger"
)

// Input limits of the OpenAI speech models, in tokens.
var openAIModelTokenLimits = map[string]int{
	"gpt-4o-mini-tts": 2000,
	"tts-1":           4096,
	"tts-1-hd":        4096,
}

// DefaultTokenLimit applies to models without a documented limit.
const DefaultTokenLimit = 2000

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken

	// tokenEncoding returns the tokenizer, or nil when it is unavailable.
	tokenEncoding = encoding
)

// encoding loads cl100k_base from the ranks compiled into the binary, so
// counting tokens never touches the network.
func encoding() *tiktoken.Tiktoken {
	encOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		var err error
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			log := logger.For("tts")
			log.Warn().Err(err).Msg("tokenizer unavailable, estimating tokens from runes")
			enc = nil
		}
	})
	return enc
}

// tokenLimit returns the input limit for an OpenAI speech model.
func tokenLimit(model string) int {
	if limit, ok := openAIModelTokenLimits[model]; ok {
		return limit
	}
	return DefaultTokenLimit
}

// countTokens returns the number of tokens text would use, and whether it
// could exceed limit. A cl100k token covers at least one rune, so text with
// no more runes than limit never reaches the tokenizer.
func countTokens(text string, limit int) (int, bool) {
	runes := utf8.RuneCountInString(text)
	if runes <= limit {
		return runes, false
	}
	if e := tokenEncoding(); e != nil {
		n := len(e.Encode(text, nil, nil))
		return n, n > limit
	}
	// Roughly three runes per token.
	n := (runes + 2) / 3
	return n, n > limit
}
