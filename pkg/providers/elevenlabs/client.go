package elevenlabs

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"prados-hq/legalhub/pkg/providers"
)

// VoiceSettings tunes speech synthesis output.
type VoiceSettings struct {
	Stability       float64
	SimilarityBoost float64
	Style           float64
	SpeakerBoost    bool
}

// Config configures the ElevenLabs adapter.
type Config struct {
	providers.ProviderConfig

	// VoiceID is the default voice for synthesis requests that do not
	// name one.
	VoiceID string

	// TTSModel is the text-to-speech model identifier.
	TTSModel string

	// STTModel is the speech-to-text model identifier.
	STTModel string

	// VoiceSettings tunes synthesis output.
	VoiceSettings VoiceSettings
}

// Client is the ElevenLabs speech adapter.
// It implements the providers.SpeechProvider interface.
//
// Like the chat adapter, a Client without an API key is valid: operations
// fail fast with a NotConfiguredError so the service can start degraded.
type Client struct {
	*providers.HTTPProvider

	voiceID       string
	ttsModel      string
	sttModel      string
	voiceSettings VoiceSettings
}

// NewClient creates a new ElevenLabs adapter.
func NewClient(cfg Config) *Client {
	if cfg.Name == "" {
		cfg.Name = "elevenlabs"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if cfg.TTSModel == "" {
		cfg.TTSModel = "eleven_multilingual_v2"
	}
	if cfg.STTModel == "" {
		cfg.STTModel = "scribe_v1"
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}

	c := &Client{
		HTTPProvider:  providers.NewHTTPProvider(cfg.ProviderConfig),
		voiceID:       cfg.VoiceID,
		ttsModel:      cfg.TTSModel,
		sttModel:      cfg.STTModel,
		voiceSettings: cfg.VoiceSettings,
	}

	slog.Info("elevenlabs provider initialized",
		"provider", cfg.Name,
		"base_url", cfg.BaseURL,
		"voice_id", cfg.VoiceID,
		"configured", c.IsConfigured(),
	)

	return c
}

// Synthesize converts text to mp3 audio.
func (c *Client) Synthesize(ctx context.Context, req *providers.SpeechRequest) (*providers.Audio, error) {
	if !c.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: c.GetName()}
	}
	if req == nil || strings.TrimSpace(req.Text) == "" {
		return nil, &providers.ValidationError{Field: "text", Message: "text is required"}
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = c.voiceID
	}

	wireReq := &ttsRequest{
		Text:    req.Text,
		ModelID: c.ttsModel,
		VoiceSettings: wireVoiceSettings{
			Stability:       c.voiceSettings.Stability,
			SimilarityBoost: c.voiceSettings.SimilarityBoost,
			Style:           c.voiceSettings.Style,
			UseSpeakerBoost: c.voiceSettings.SpeakerBoost,
		},
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s", c.GetConfig().BaseURL, url.PathEscape(voiceID))
	headers := map[string]string{
		"xi-api-key":   c.GetConfig().APIKey,
		"Content-Type": "application/json",
		"Accept":       "audio/mpeg",
	}

	start := time.Now()
	data, err := c.DoBinaryRequest(ctx, "POST", endpoint, wireReq, headers)
	if err != nil {
		c.ObserveCall("synthesize", start, err)
		return nil, err
	}
	if len(data) == 0 {
		parseErr := &providers.ParseError{
			Provider: c.GetName(),
			Cause:    fmt.Errorf("synthesis returned no audio"),
		}
		c.ObserveCall("synthesize", start, parseErr)
		return nil, parseErr
	}
	c.ObserveCall("synthesize", start, nil)

	slog.Debug("speech synthesized",
		"provider", c.GetName(),
		"voice_id", voiceID,
		"bytes", len(data),
	)

	return &providers.Audio{Data: data, Format: providers.FormatMP3}, nil
}

// Transcribe converts audio to text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (*providers.Transcript, error) {
	if !c.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: c.GetName()}
	}
	if len(audio) == 0 {
		return nil, &providers.ValidationError{Field: "audio", Message: "audio data is required"}
	}
	if filename == "" {
		filename = "audio.webm"
	}

	endpoint := fmt.Sprintf("%s/speech-to-text", c.GetConfig().BaseURL)
	headers := map[string]string{
		"xi-api-key": c.GetConfig().APIKey,
	}
	fields := map[string]string{
		"model_id": c.sttModel,
	}
	files := []providers.MultipartFile{
		{FieldName: "file", Filename: filename, Data: audio},
	}

	start := time.Now()
	var wireResp sttResponse
	if err := c.DoMultipartRequest(ctx, "POST", endpoint, fields, files, &wireResp, headers); err != nil {
		c.ObserveCall("transcribe", start, err)
		return nil, err
	}
	c.ObserveCall("transcribe", start, nil)

	transcript := &providers.Transcript{
		Text:     strings.TrimSpace(wireResp.Text),
		Language: wireResp.LanguageCode,
	}

	slog.Debug("audio transcribed",
		"provider", c.GetName(),
		"bytes", len(audio),
		"chars", len(transcript.Text),
	)

	return transcript, nil
}

// LookupAgent fetches a conversational agent's voice and name.
func (c *Client) LookupAgent(ctx context.Context, agentID string) (*providers.AgentInfo, error) {
	if !c.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: c.GetName()}
	}
	if agentID == "" {
		return nil, &providers.ValidationError{Field: "agent_id", Message: "agent id is required"}
	}

	endpoint := fmt.Sprintf("%s/convai/agents/%s", c.GetConfig().BaseURL, url.PathEscape(agentID))
	headers := map[string]string{
		"xi-api-key": c.GetConfig().APIKey,
	}

	start := time.Now()
	var wireResp agentResponse
	if err := c.DoJSONRequest(ctx, "GET", endpoint, nil, &wireResp, headers); err != nil {
		c.ObserveCall("lookup_agent", start, err)
		return nil, err
	}
	c.ObserveCall("lookup_agent", start, nil)

	return &providers.AgentInfo{
		ID:      agentID,
		Name:    wireResp.Name,
		VoiceID: wireResp.ConversationConfig.TTS.VoiceID,
	}, nil
}
