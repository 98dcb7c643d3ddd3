package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"prados-hq/legalhub/pkg/history"
	"prados-hq/legalhub/pkg/knowledge"
	"prados-hq/legalhub/pkg/providers"
)

// fakeChat is a scriptable ChatProvider.
type fakeChat struct {
	configured bool
	reply      string
	err        error
	lastReq    *providers.ChatRequest
}

func (f *fakeChat) Complete(_ context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &providers.ChatResponse{Content: f.reply, FinishReason: providers.FinishReasonStop}, nil
}
func (f *fakeChat) IsConfigured() bool { return f.configured }
func (f *fakeChat) GetName() string    { return "openai" }
func (f *fakeChat) IsHealthy() bool    { return true }
func (f *fakeChat) Close() error       { return nil }

// fakeSpeech is a scriptable SpeechProvider.
type fakeSpeech struct {
	configured bool
	transcript string
	audio      []byte
	synthErr   error
	agentInfo  *providers.AgentInfo
	agentErr   error
	lastVoice  string
}

func (f *fakeSpeech) Synthesize(_ context.Context, req *providers.SpeechRequest) (*providers.Audio, error) {
	f.lastVoice = req.VoiceID
	if f.synthErr != nil {
		return nil, f.synthErr
	}
	return &providers.Audio{Data: f.audio, Format: providers.FormatMP3}, nil
}

func (f *fakeSpeech) Transcribe(_ context.Context, _ []byte, _ string) (*providers.Transcript, error) {
	return &providers.Transcript{Text: f.transcript}, nil
}

func (f *fakeSpeech) LookupAgent(_ context.Context, agentID string) (*providers.AgentInfo, error) {
	if f.agentErr != nil {
		return nil, f.agentErr
	}
	return f.agentInfo, nil
}
func (f *fakeSpeech) IsConfigured() bool { return f.configured }
func (f *fakeSpeech) GetName() string    { return "elevenlabs" }
func (f *fakeSpeech) IsHealthy() bool    { return true }
func (f *fakeSpeech) Close() error       { return nil }

func testOptions() Options {
	return Options{
		VoiceID:      "rachel-voice",
		AgentVoiceID: "prados-voice",
		AgentName:    "Doctor Prados de Paraiso",
	}
}

func newTestAssistant(chat *fakeChat, speech *fakeSpeech, store history.Storage) *Assistant {
	kb, _ := knowledge.NewBase("", nil)
	return New(chat, speech, kb, store, testOptions())
}

func TestTextChat(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "La condición legal es la posesión."}
	speech := &fakeSpeech{configured: true, audio: []byte("mp3-bytes")}
	store := history.NewMemoryStorage()
	a := newTestAssistant(chat, speech, store)

	result, err := a.TextChat(context.Background(), "sess-1", "  ¿Cuándo entregan el título?  ")
	if err != nil {
		t.Fatalf("TextChat() error = %v", err)
	}

	if result.UserText != "¿Cuándo entregan el título?" {
		t.Errorf("UserText = %q, want trimmed input", result.UserText)
	}
	if result.AIResponse != chat.reply {
		t.Errorf("AIResponse = %q", result.AIResponse)
	}
	wantURL := "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString([]byte("mp3-bytes"))
	if result.AudioURL != wantURL {
		t.Errorf("AudioURL = %q, want data URL", result.AudioURL)
	}
	if result.Format != "mp3" {
		t.Errorf("Format = %q, want mp3", result.Format)
	}
	// Text chat audio uses the agent voice.
	if speech.lastVoice != "prados-voice" {
		t.Errorf("voice = %q, want prados-voice", speech.lastVoice)
	}
	// System prompt carries the knowledge base.
	if len(chat.lastReq.Messages) != 2 || chat.lastReq.Messages[0].Role != providers.RoleSystem {
		t.Fatalf("unexpected messages: %+v", chat.lastReq.Messages)
	}
	if !strings.Contains(chat.lastReq.Messages[0].Content, "Prados de Paraíso") {
		t.Error("system prompt missing knowledge text")
	}

	msgs, _ := store.List(context.Background(), history.ListFilter{SessionID: "sess-1"})
	if len(msgs) != 2 {
		t.Errorf("recorded %d messages, want 2", len(msgs))
	}
}

func TestTextChatEmptyText(t *testing.T) {
	a := newTestAssistant(&fakeChat{configured: true}, &fakeSpeech{configured: true}, nil)

	_, err := a.TextChat(context.Background(), "", "   ")
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error type = %T, want *EmptyInputError", err)
	}
	if emptyErr.Detail != DetailTextRequired {
		t.Errorf("Detail = %q, want %q", emptyErr.Detail, DetailTextRequired)
	}
}

func TestTextChatChatNotConfigured(t *testing.T) {
	a := newTestAssistant(&fakeChat{configured: false}, &fakeSpeech{configured: true}, nil)

	_, err := a.TextChat(context.Background(), "", "hola")
	var ncErr *providers.NotConfiguredError
	if !errors.As(err, &ncErr) {
		t.Fatalf("error type = %T, want *NotConfiguredError", err)
	}
	if ncErr.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", ncErr.Provider)
	}
}

func TestTextChatSynthesisFailureIsNonFatal(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "respuesta"}
	speech := &fakeSpeech{configured: true, synthErr: errors.New("tts down")}
	a := newTestAssistant(chat, speech, nil)

	result, err := a.TextChat(context.Background(), "", "hola")
	if err != nil {
		t.Fatalf("TextChat() error = %v, want success without audio", err)
	}
	if result.AudioURL != "" || result.Format != "" {
		t.Errorf("AudioURL = %q, Format = %q, want empty on synthesis failure", result.AudioURL, result.Format)
	}
	if result.AIResponse != "respuesta" {
		t.Errorf("AIResponse = %q", result.AIResponse)
	}
}

func TestTextChatNoSpeechProvider(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "respuesta"}
	a := newTestAssistant(chat, &fakeSpeech{configured: false}, nil)

	result, err := a.TextChat(context.Background(), "", "hola")
	if err != nil {
		t.Fatalf("TextChat() error = %v", err)
	}
	if result.AudioURL != "" {
		t.Errorf("AudioURL = %q, want empty when speech unconfigured", result.AudioURL)
	}
}

func TestVoiceChat(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "Respuesta breve."}
	speech := &fakeSpeech{configured: true, transcript: "¿Tenemos partida registral?", audio: []byte("voz")}
	a := newTestAssistant(chat, speech, nil)

	result, err := a.VoiceChat(context.Background(), "", []byte("audio"), "voice.webm")
	if err != nil {
		t.Fatalf("VoiceChat() error = %v", err)
	}

	if result.TranscribedText != "¿Tenemos partida registral?" {
		t.Errorf("TranscribedText = %q", result.TranscribedText)
	}
	if !strings.HasPrefix(result.AudioURL, "data:audio/mpeg;base64,") {
		t.Errorf("AudioURL = %q, want data URL", result.AudioURL)
	}
	// Voice chat replies use the default voice.
	if speech.lastVoice != "rachel-voice" {
		t.Errorf("voice = %q, want rachel-voice", speech.lastVoice)
	}
	// Voice prompt asks for brevity.
	if !strings.Contains(chat.lastReq.Messages[0].Content, "3-4 frases") {
		t.Error("voice system prompt missing brevity instruction")
	}
}

func TestVoiceChatEmptyTranscript(t *testing.T) {
	speech := &fakeSpeech{configured: true, transcript: ""}
	a := newTestAssistant(&fakeChat{configured: true}, speech, nil)

	_, err := a.VoiceChat(context.Background(), "", []byte("audio"), "voice.webm")
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error type = %T, want *EmptyInputError", err)
	}
	if emptyErr.Detail != DetailEmptyTranscript {
		t.Errorf("Detail = %q, want Spanish transcript message", emptyErr.Detail)
	}
}

func TestVoiceChatSpeechNotConfigured(t *testing.T) {
	a := newTestAssistant(&fakeChat{configured: true}, &fakeSpeech{configured: false}, nil)

	_, err := a.VoiceChat(context.Background(), "", []byte("audio"), "voice.webm")
	var ncErr *providers.NotConfiguredError
	if !errors.As(err, &ncErr) {
		t.Fatalf("error type = %T, want *NotConfiguredError", err)
	}
	if ncErr.Provider != "elevenlabs" {
		t.Errorf("Provider = %q, want elevenlabs", ncErr.Provider)
	}
}

func TestAgentChatUsesLookedUpVoice(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "Respuesta del agente."}
	speech := &fakeSpeech{
		configured: true,
		transcript: "pregunta",
		audio:      []byte("voz"),
		agentInfo:  &providers.AgentInfo{ID: "agent-1", Name: "Dr. Custom", VoiceID: "custom-voice"},
	}
	a := newTestAssistant(chat, speech, nil)

	result, err := a.AgentChat(context.Background(), "", []byte("audio"), "voice.webm", "agent-1")
	if err != nil {
		t.Fatalf("AgentChat() error = %v", err)
	}

	if result.VoiceUsed != "custom-voice" {
		t.Errorf("VoiceUsed = %q, want custom-voice", result.VoiceUsed)
	}
	if speech.lastVoice != "custom-voice" {
		t.Errorf("synthesis voice = %q, want custom-voice", speech.lastVoice)
	}
	if !strings.Contains(chat.lastReq.Messages[0].Content, "Eres Dr. Custom") {
		t.Error("agent prompt missing looked-up agent name")
	}
}

func TestAgentChatLookupFailureFallsBack(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "Respuesta."}
	speech := &fakeSpeech{
		configured: true,
		transcript: "pregunta",
		audio:      []byte("voz"),
		agentErr:   errors.New("agent api down"),
	}
	a := newTestAssistant(chat, speech, nil)

	result, err := a.AgentChat(context.Background(), "", []byte("audio"), "voice.webm", "agent-1")
	if err != nil {
		t.Fatalf("AgentChat() error = %v, lookup failure must be non-fatal", err)
	}
	if result.VoiceUsed != "prados-voice" {
		t.Errorf("VoiceUsed = %q, want default prados-voice", result.VoiceUsed)
	}
	if !strings.Contains(chat.lastReq.Messages[0].Content, "Doctor Prados de Paraiso") {
		t.Error("agent prompt missing default agent name")
	}
}

func TestSpeak(t *testing.T) {
	speech := &fakeSpeech{configured: true, audio: []byte("mp3")}
	a := newTestAssistant(&fakeChat{configured: true}, speech, nil)

	result, err := a.Speak(context.Background(), "Hola")
	if err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if result.Audio != base64.StdEncoding.EncodeToString([]byte("mp3")) {
		t.Errorf("Audio = %q, want base64 bytes", result.Audio)
	}
	if result.Format != "mp3" {
		t.Errorf("Format = %q, want mp3", result.Format)
	}
	if speech.lastVoice != "rachel-voice" {
		t.Errorf("voice = %q, want default rachel-voice", speech.lastVoice)
	}
}

func TestSpeakEmptyText(t *testing.T) {
	a := newTestAssistant(&fakeChat{configured: true}, &fakeSpeech{configured: true}, nil)

	_, err := a.Speak(context.Background(), "")
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error type = %T, want *EmptyInputError", err)
	}
}

func TestRecordFailureDoesNotFailRequest(t *testing.T) {
	chat := &fakeChat{configured: true, reply: "respuesta"}
	speech := &fakeSpeech{configured: true, audio: []byte("mp3")}
	a := newTestAssistant(chat, speech, failingStorage{})

	if _, err := a.TextChat(context.Background(), "sess", "hola"); err != nil {
		t.Fatalf("TextChat() error = %v, storage failure must be swallowed", err)
	}
}

// failingStorage always errors.
type failingStorage struct{}

func (failingStorage) Store(context.Context, *history.Message) error { return errors.New("disk full") }
func (failingStorage) List(context.Context, history.ListFilter) ([]*history.Message, error) {
	return nil, errors.New("disk full")
}
func (failingStorage) Count(context.Context) (int64, error) { return 0, errors.New("disk full") }
func (failingStorage) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, errors.New("disk full")
}
func (failingStorage) Close() error { return nil }
