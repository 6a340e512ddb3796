package api

import "context"

// CleanupInstruction is the fixed system prompt sent with every cleanup request.
const CleanupInstruction = "You are a helpful assistant that cleans up speech transcripts. " +
	"Remove filler words, false starts and repetitions, fix punctuation and capitalization, " +
	"and keep the original meaning. Return only the cleaned transcript, no commentary."

// Cleaner defines a post-processing interface that rewrites raw transcript text
// through a remote language model.
type Cleaner interface {
	Clean(ctx context.Context, text string) (string, error)
}
