package elevenlabs

// ttsRequest is the wire format for a text-to-speech request.
type ttsRequest struct {
	Text          string            `json:"text"`
	ModelID       string            `json:"model_id"`
	VoiceSettings wireVoiceSettings `json:"voice_settings"`
}

// wireVoiceSettings tunes synthesis on the wire.
type wireVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// sttResponse is the wire format for a speech-to-text response.
type sttResponse struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
}

// agentResponse is the wire format for a conversational agent lookup.
// Only the fields the service uses are decoded.
type agentResponse struct {
	AgentID            string `json:"agent_id"`
	Name               string `json:"name"`
	ConversationConfig struct {
		TTS struct {
			VoiceID string `json:"voice_id"`
		} `json:"tts"`
	} `json:"conversation_config"`
}
