package elevenlabs

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	mock "prados-hq/legalhub/internal/providers"
	"prados-hq/legalhub/pkg/providers"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		ProviderConfig: mock.TestConfigWithURL("elevenlabs", baseURL),
		VoiceID:        "21m00Tcm4TlvDq8ikWAM",
		VoiceSettings: VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			SpeakerBoost:    true,
		},
	})
}

func TestSynthesize(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/text-to-speech/21m00Tcm4TlvDq8ikWAM", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockAudioBytes(),
		Headers:    map[string]string{"Content-Type": "audio/mpeg"},
	})

	c := newTestClient(ms.URL())
	defer c.Close()

	audio, err := c.Synthesize(context.Background(), &providers.SpeechRequest{Text: "Hola"})
	mock.AssertNoError(t, err)

	if audio.Format != providers.FormatMP3 {
		t.Errorf("Format = %q, want mp3", audio.Format)
	}
	if !bytes.Equal(audio.Data, mock.MockAudioBytes()) {
		t.Error("audio bytes do not match mock response")
	}
	if key := ms.LastHeader("xi-api-key"); key != "test-key" {
		t.Errorf("xi-api-key = %q, want test-key", key)
	}
}

func TestSynthesizeCustomVoice(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/text-to-speech/5kMbtRSEKIkRZSdXxrZg", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockAudioBytes(),
	})

	c := newTestClient(ms.URL())
	defer c.Close()

	_, err := c.Synthesize(context.Background(), &providers.SpeechRequest{
		Text:    "Hola",
		VoiceID: "5kMbtRSEKIkRZSdXxrZg",
	})
	mock.AssertNoError(t, err)

	if ms.GetRequestCount() != 1 {
		t.Errorf("request count = %d, want 1", ms.GetRequestCount())
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	c := newTestClient("http://localhost:1")
	defer c.Close()

	_, err := c.Synthesize(context.Background(), &providers.SpeechRequest{Text: "   "})
	mock.AssertError(t, err)

	if _, ok := err.(*providers.ValidationError); !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestSynthesizeNotConfigured(t *testing.T) {
	cfg := mock.TestConfig("elevenlabs")
	cfg.APIKey = ""
	c := NewClient(Config{ProviderConfig: cfg, VoiceID: "v"})
	defer c.Close()

	_, err := c.Synthesize(context.Background(), &providers.SpeechRequest{Text: "Hola"})
	mock.AssertError(t, err)

	if _, ok := err.(*providers.NotConfiguredError); !ok {
		t.Fatalf("error type = %T, want *NotConfiguredError", err)
	}
}

func TestTranscribe(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/speech-to-text", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockTranscriptionResponse("  ¿Cuánto cuesta la asesoría?  "),
	})

	c := newTestClient(ms.URL())
	defer c.Close()

	transcript, err := c.Transcribe(context.Background(), []byte("fake-audio"), "voice.webm")
	mock.AssertNoError(t, err)

	if transcript.Text != "¿Cuánto cuesta la asesoría?" {
		t.Errorf("Text = %q, want trimmed transcript", transcript.Text)
	}
	if transcript.Language != "es" {
		t.Errorf("Language = %q, want es", transcript.Language)
	}
	if key := ms.LastHeader("xi-api-key"); key != "test-key" {
		t.Errorf("xi-api-key = %q, want test-key", key)
	}
	// The multipart body must carry the model and the file.
	body := string(ms.LastBody())
	for _, want := range []string{"scribe_v1", "voice.webm", "fake-audio"} {
		if !bytes.Contains([]byte(body), []byte(want)) {
			t.Errorf("multipart body missing %q", want)
		}
	}
}

func TestTranscribeEmptyAudio(t *testing.T) {
	c := newTestClient("http://localhost:1")
	defer c.Close()

	_, err := c.Transcribe(context.Background(), nil, "voice.webm")
	mock.AssertError(t, err)

	if _, ok := err.(*providers.ValidationError); !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestLookupAgent(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/convai/agents/agent-1", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockAgentResponse("agent-1", "Doctor Prados", "voice-77"),
	})

	c := newTestClient(ms.URL())
	defer c.Close()

	info, err := c.LookupAgent(context.Background(), "agent-1")
	mock.AssertNoError(t, err)

	if info.Name != "Doctor Prados" {
		t.Errorf("Name = %q, want Doctor Prados", info.Name)
	}
	if info.VoiceID != "voice-77" {
		t.Errorf("VoiceID = %q, want voice-77", info.VoiceID)
	}
}

type fakeRecorder struct {
	calls []string
}

func (r *fakeRecorder) RecordProviderCall(provider, operation, status string, _ time.Duration) {
	r.calls = append(r.calls, provider+"/"+operation+"/"+status)
}

func (r *fakeRecorder) RecordChatTokens(string, int, int) {}

func TestAdapterRecordsCalls(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/text-to-speech/21m00Tcm4TlvDq8ikWAM", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockAudioBytes(),
	})
	ms.SetResponse("/speech-to-text", mock.MockResponse{
		StatusCode: http.StatusOK,
		Body:       mock.MockTranscriptionResponse("hola"),
	})

	rec := &fakeRecorder{}
	cfg := mock.TestConfigWithURL("elevenlabs", ms.URL())
	cfg.Recorder = rec
	c := NewClient(Config{ProviderConfig: cfg, VoiceID: "21m00Tcm4TlvDq8ikWAM"})
	defer c.Close()

	_, err := c.Synthesize(context.Background(), &providers.SpeechRequest{Text: "Hola"})
	mock.AssertNoError(t, err)
	_, err = c.Transcribe(context.Background(), []byte("fake-audio"), "voice.webm")
	mock.AssertNoError(t, err)

	want := []string{"elevenlabs/synthesize/success", "elevenlabs/transcribe/success"}
	if len(rec.calls) != len(want) {
		t.Fatalf("recorded calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, rec.calls[i], want[i])
		}
	}
}

func TestAdapterRecordsFailedLookup(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	rec := &fakeRecorder{}
	cfg := mock.TestConfigWithURL("elevenlabs", ms.URL())
	cfg.MaxRetries = 0
	cfg.Recorder = rec
	c := NewClient(Config{ProviderConfig: cfg, VoiceID: "v"})
	defer c.Close()

	_, err := c.LookupAgent(context.Background(), "missing")
	mock.AssertError(t, err)

	if len(rec.calls) != 1 || rec.calls[0] != "elevenlabs/lookup_agent/error" {
		t.Errorf("recorded calls = %v, want one elevenlabs/lookup_agent/error", rec.calls)
	}
}

func TestLookupAgentNotFound(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()
	// No response registered: mock answers 404, adapter retries then fails.

	cfg := mock.TestConfigWithURL("elevenlabs", ms.URL())
	cfg.MaxRetries = 0
	c := NewClient(Config{ProviderConfig: cfg, VoiceID: "v"})
	defer c.Close()

	_, err := c.LookupAgent(context.Background(), "missing")
	mock.AssertError(t, err)
}
