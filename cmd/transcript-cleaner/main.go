package main

import (
	"transcript-cleaner/cmd/transcript-cleaner/cmd"

	// Import backends to register them
	_ "transcript-cleaner/internal/app/api/anthropic"
	_ "transcript-cleaner/internal/app/api/gemini"
	_ "transcript-cleaner/internal/app/api/openai/chat"
	_ "transcript-cleaner/internal/app/api/openai/whisper"
	_ "transcript-cleaner/internal/app/api/whisper_cpp"
	_ "transcript-cleaner/internal/app/api/whisper_server"
)

func main() {
	cmd.Execute()
}
