// Package testutil provides test doubles and fixtures shared by the
// transcript-cleaner packages.
//
// It contains two kinds of helpers:
//
// 1. Mocks (mock_transcriber.go, mock_cleaner.go):
//   - MockTranscriber: api.Transcriber that records every call and can be
//     driven either by defaults or by testify expectations
//   - MockCleaner: api.Cleaner with the same two modes
//
// 2. Fixtures (fixtures.go):
//   - WriteWavFile: writes a silent PCM WAV of a given rate and length
//   - Sample transcripts in raw and cleaned form
//
// # Usage
//
//	transcriber := testutil.NewMockTranscriber().WithDefaultResponse("hello")
//	svc := services.NewTranscriptionService(transcriber, ...)
//
//	cleaner := new(testutil.MockCleaner)
//	cleaner.On("Clean", mock.Anything, "um hi").Return("Hi.", nil)
package testutil
