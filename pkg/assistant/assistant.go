package assistant

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"prados-hq/legalhub/pkg/history"
	"prados-hq/legalhub/pkg/knowledge"
	"prados-hq/legalhub/pkg/providers"
)

// Options configures assistant behavior.
type Options struct {
	// VoiceID is the voice for plain TTS and voice chat replies.
	VoiceID string

	// AgentVoiceID is the fallback voice for agent replies and the voice
	// used for optional text chat audio.
	AgentVoiceID string

	// AgentName is the fallback persona name when the agent lookup does
	// not provide one.
	AgentName string
}

// Assistant orchestrates knowledge, providers and history.
type Assistant struct {
	chat   providers.ChatProvider
	speech providers.SpeechProvider
	kb     *knowledge.Base
	store  history.Storage
	opts   Options
	logger *slog.Logger
}

// New creates an assistant. The history store may be nil; recording is then
// skipped entirely.
func New(chat providers.ChatProvider, speech providers.SpeechProvider, kb *knowledge.Base, store history.Storage, opts Options) *Assistant {
	return &Assistant{
		chat:   chat,
		speech: speech,
		kb:     kb,
		store:  store,
		opts:   opts,
		logger: slog.Default().With("component", "assistant"),
	}
}

// TextChatResult is the outcome of a text chat exchange.
type TextChatResult struct {
	UserText   string
	AIResponse string

	// AudioURL is a data:audio/mpeg;base64 URL, empty when synthesis was
	// unavailable or failed.
	AudioURL string
	Format   string
}

// VoiceChatResult is the outcome of a voice chat exchange.
type VoiceChatResult struct {
	TranscribedText string
	AIResponse      string
	AudioURL        string
	Format          string
}

// AgentChatResult is the outcome of an agent chat exchange.
type AgentChatResult struct {
	TranscribedText string
	AgentResponse   string
	AudioURL        string
	Format          string

	// VoiceUsed is the voice id the reply was synthesized with.
	VoiceUsed string
}

// SpeakResult is synthesized audio for the plain TTS operation.
type SpeakResult struct {
	// Audio is the base64-encoded mp3 bytes.
	Audio  string
	Format string
}

// TextChat answers a text question. Speech synthesis is optional: when the
// speech provider is unconfigured or fails, the reply is returned without
// audio.
func (a *Assistant) TextChat(ctx context.Context, sessionID, text string) (*TextChatResult, error) {
	if !a.chat.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.chat.GetName()}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &EmptyInputError{Field: "text", Detail: DetailTextRequired}
	}

	a.logger.Info("text chat request", "chars", len(text))

	resp, err := a.chat.Complete(ctx, &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: textPrompt(a.kb.Snapshot())},
			{Role: providers.RoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, err
	}

	result := &TextChatResult{
		UserText:   text,
		AIResponse: resp.Content,
	}

	// Audio is a nice-to-have here: log and continue on failure.
	if a.speech.IsConfigured() {
		audio, err := a.speech.Synthesize(ctx, &providers.SpeechRequest{
			Text:    resp.Content,
			VoiceID: a.opts.AgentVoiceID,
		})
		if err != nil {
			a.logger.Warn("could not generate audio for text chat", "error", err)
		} else {
			result.AudioURL = dataURL(audio.Data)
			result.Format = audio.Format
		}
	}

	a.record(ctx, sessionID, text, resp.Content, result.Format)
	return result, nil
}

// VoiceChat transcribes audio, answers it and synthesizes the reply.
func (a *Assistant) VoiceChat(ctx context.Context, sessionID string, audio []byte, filename string) (*VoiceChatResult, error) {
	if !a.speech.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.speech.GetName()}
	}
	if !a.chat.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.chat.GetName()}
	}

	transcript, err := a.speech.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	if transcript.Text == "" {
		return nil, &EmptyInputError{Field: "audio", Detail: DetailEmptyTranscript}
	}

	a.logger.Info("voice chat transcribed", "chars", len(transcript.Text))

	resp, err := a.chat.Complete(ctx, &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: voicePrompt(a.kb.Snapshot())},
			{Role: providers.RoleUser, Content: transcript.Text},
		},
	})
	if err != nil {
		return nil, err
	}

	reply, err := a.speech.Synthesize(ctx, &providers.SpeechRequest{
		Text:    resp.Content,
		VoiceID: a.opts.VoiceID,
	})
	if err != nil {
		return nil, err
	}

	a.record(ctx, sessionID, transcript.Text, resp.Content, reply.Format)

	return &VoiceChatResult{
		TranscribedText: transcript.Text,
		AIResponse:      resp.Content,
		AudioURL:        dataURL(reply.Data),
		Format:          reply.Format,
	}, nil
}

// AgentChat answers voice input with the configured agent's persona and
// voice. The agent lookup is best effort: on failure the configured
// defaults are used.
func (a *Assistant) AgentChat(ctx context.Context, sessionID string, audio []byte, filename, agentID string) (*AgentChatResult, error) {
	if !a.speech.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.speech.GetName()}
	}
	if !a.chat.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.chat.GetName()}
	}

	transcript, err := a.speech.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	if transcript.Text == "" {
		return nil, &EmptyInputError{Field: "audio", Detail: DetailEmptyAgentTranscript}
	}

	voiceID := a.opts.AgentVoiceID
	agentName := a.opts.AgentName
	if info, err := a.speech.LookupAgent(ctx, agentID); err != nil {
		a.logger.Warn("could not fetch agent details, using default voice",
			"agent_id", agentID,
			"error", err,
		)
	} else {
		if info.VoiceID != "" {
			voiceID = info.VoiceID
		}
		if info.Name != "" {
			agentName = info.Name
		}
	}

	a.logger.Info("agent chat", "agent_id", agentID, "voice_id", voiceID)

	resp, err := a.chat.Complete(ctx, &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: agentPrompt(agentName, a.kb.Snapshot())},
			{Role: providers.RoleUser, Content: transcript.Text},
		},
	})
	if err != nil {
		return nil, err
	}

	reply, err := a.speech.Synthesize(ctx, &providers.SpeechRequest{
		Text:    resp.Content,
		VoiceID: voiceID,
	})
	if err != nil {
		return nil, err
	}

	a.record(ctx, sessionID, transcript.Text, resp.Content, reply.Format)

	return &AgentChatResult{
		TranscribedText: transcript.Text,
		AgentResponse:   resp.Content,
		AudioURL:        dataURL(reply.Data),
		Format:          reply.Format,
		VoiceUsed:       voiceID,
	}, nil
}

// Speak synthesizes text with the default voice.
func (a *Assistant) Speak(ctx context.Context, text string) (*SpeakResult, error) {
	if !a.speech.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: a.speech.GetName()}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Field: "text", Detail: DetailTextRequired}
	}

	audio, err := a.speech.Synthesize(ctx, &providers.SpeechRequest{
		Text:    text,
		VoiceID: a.opts.VoiceID,
	})
	if err != nil {
		return nil, err
	}

	return &SpeakResult{
		Audio:  base64.StdEncoding.EncodeToString(audio.Data),
		Format: audio.Format,
	}, nil
}

// record stores the exchange as a user/assistant message pair. Failures are
// logged and swallowed.
func (a *Assistant) record(ctx context.Context, sessionID, userText, assistantText, audioFormat string) {
	if a.store == nil {
		return
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	pair := []*history.Message{
		{SessionID: sessionID, Role: history.RoleUser, Content: userText},
		{SessionID: sessionID, Role: history.RoleAssistant, Content: assistantText, AudioFormat: audioFormat},
	}
	for _, msg := range pair {
		if err := a.store.Store(ctx, msg); err != nil {
			a.logger.Warn("failed to record transcript message",
				"session_id", sessionID,
				"role", msg.Role,
				"error", err,
			)
			return
		}
	}
}

// dataURL wraps mp3 bytes in the data URL scheme the frontend plays directly.
func dataURL(audio []byte) string {
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio)
}
