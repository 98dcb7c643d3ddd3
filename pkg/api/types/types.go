// Package types defines the wire shapes of the Legal Hub JSON API.
//
// Error responses use the {"detail": "..."} envelope the frontend already
// consumes; success shapes mirror the production API field for field.
package types

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RootResponse is the GET /api/ banner.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the GET /api/health report.
type HealthResponse struct {
	Status string `json:"status"`

	// CORSOrigins is the raw CORS_ORIGINS environment value.
	CORSOrigins string `json:"cors_origins"`

	// CORSOriginsParsed is the effective origin allow-list.
	CORSOriginsParsed []string `json:"cors_origins_parsed"`

	OpenAIConfigured     bool `json:"openai_configured"`
	ElevenLabsConfigured bool `json:"elevenlabs_configured"`

	// HistoryEnabled reports whether transcripts are being recorded.
	HistoryEnabled bool `json:"history_enabled"`
}

// TTSRequest is the POST /api/tts body.
type TTSRequest struct {
	Text string `json:"text"`
}

// TTSResponse carries base64 mp3 audio.
type TTSResponse struct {
	Audio  string `json:"audio"`
	Format string `json:"format"`
}

// TextChatRequest is the POST /api/text-chat body.
type TextChatRequest struct {
	Text string `json:"text"`

	// SessionID groups the exchange in history. Optional.
	SessionID string `json:"session_id,omitempty"`
}

// TextChatResponse mirrors the text chat result. AudioURL is null when
// synthesis was unavailable.
type TextChatResponse struct {
	UserText   string  `json:"user_text"`
	AIResponse string  `json:"ai_response"`
	AudioURL   *string `json:"audio_url"`
	Format     *string `json:"format"`
}

// VoiceChatResponse mirrors the voice chat result.
type VoiceChatResponse struct {
	TranscribedText string `json:"transcribed_text"`
	AIResponse      string `json:"ai_response"`
	AudioURL        string `json:"audio_url"`
	Format          string `json:"format"`
}

// AgentChatResponse mirrors the voice agent result.
type AgentChatResponse struct {
	TranscribedText string `json:"transcribed_text"`
	AgentResponse   string `json:"agent_response"`
	AudioURL        string `json:"audio_url"`
	Format          string `json:"format"`
	VoiceUsed       string `json:"voice_used"`
}

// MessageRecord is one transcript entry in history responses.
type MessageRecord struct {
	ID          string `json:"id"`
	SessionID   string `json:"session_id"`
	Role        string `json:"role"`
	Content     string `json:"content"`
	AudioFormat string `json:"audio_format,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// MessagesResponse is the GET /api/messages body.
type MessagesResponse struct {
	Messages []MessageRecord `json:"messages"`
	Count    int             `json:"count"`
}

// AppendMessageRequest is the POST /api/messages body.
type AppendMessageRequest struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// AppendMessageResponse confirms a stored message.
type AppendMessageResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
