package types

// TranslateRequest is the payload accepted by POST /translate.
type TranslateRequest struct {
	// Required text to translate.
	// example: Hello, how are you?
	Text string `json:"text" example:"Hello, how are you?"`
	// Optional source language code. If empty and auto-detect is enabled,
	// the server detects the source language.
	// example: en
	SourceLang string `json:"source_lang,omitempty" example:"en"`
	// Optional target language code. If empty, the server derives it from the
	// source via the configured bidirectional pair.
	// example: de
	TargetLang string `json:"target_lang,omitempty" example:"de"`
	// Whether to auto-detect the source language when source_lang is empty.
	// Defaults to true when omitted.
	// example: true
	AutoDetect *bool `json:"auto_detect,omitempty" example:"true"`
}

// AutoDetectEnabled reports the effective auto-detect setting (default true).
func (r TranslateRequest) AutoDetectEnabled() bool {
	return r.AutoDetect == nil || *r.AutoDetect
}

// TranslateResponse is the result of a translate call. Exactly one of the
// success fields or the error fields is populated.
type TranslateResponse struct {
	// Translated text. Empty when Success is false.
	// example: Hallo, wie geht es dir?
	TranslatedText string `json:"translated_text"`
	// Resolved source language code.
	// example: en
	SourceLang string `json:"source_language,omitempty" example:"en"`
	// Resolved target language code.
	// example: de
	TargetLang string `json:"target_language,omitempty" example:"de"`
	// Display name of the source language.
	// example: English
	SourceLangName string `json:"source_language_name,omitempty" example:"English"`
	// Display name of the target language.
	// example: German
	TargetLangName string `json:"target_language_name,omitempty" example:"German"`
	// Name of the model that served the request.
	// example: EN-DE-Transformer-Base
	ModelName string `json:"model_name,omitempty" example:"EN-DE-Transformer-Base"`
	// Compute device the request was served on (cpu or cuda).
	// example: cpu
	DeviceUsed string `json:"device_used,omitempty" example:"cpu"`
	// Whether the translation succeeded.
	// example: true
	Success bool `json:"success"`
	// Error message when Success is false.
	Error string `json:"error,omitempty"`
	// Machine-readable error category when Success is false
	// (e.g., not_initialized, invalid_language, tool_failure).
	// example: not_initialized
	ErrorKind string `json:"error_kind,omitempty" example:"not_initialized"`
}

// DetectRequest is the payload accepted by POST /detect.
type DetectRequest struct {
	// Text to classify.
	// example: Ich bin hier und das ist gut.
	Text string `json:"text" example:"Ich bin hier und das ist gut."`
}

// DetectResponse is the result of a language detection call.
type DetectResponse struct {
	// Detected language code.
	// example: de
	DetectedLanguage string `json:"detected_language" example:"de"`
	// Display name of the detected language.
	// example: German
	LanguageName string `json:"language_name" example:"German"`
	// Confidence note. The indicator heuristic always reports medium.
	// example: medium
	Confidence string `json:"confidence" example:"medium"`
}

// SwitchRequest is the payload accepted by POST /switch.
type SwitchRequest struct {
	// Index of the model in the registry catalog.
	// example: 1
	ModelIndex int `json:"model_index" example:"1"`
}

// ModelSummary describes one registry entry for GET /models.
type ModelSummary struct {
	// Position of the model in the catalog.
	// example: 0
	Index int `json:"index" example:"0"`
	// Human-readable model name.
	// example: EN-DE-Transformer-Big
	Name string `json:"name" example:"EN-DE-Transformer-Big"`
	// Whether this entry is the configured default.
	// example: false
	Default bool `json:"default" example:"false"`
	// Whether this entry is currently published and serving.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// Catalog entries in registry order.
	Models []ModelSummary `json:"models"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Name of the currently published model, empty when none loaded yet.
	// example: Multilingual-600M-distilled
	CurrentModel string `json:"current_model,omitempty" example:"Multilingual-600M-distilled"`
	// Compute device in use (cpu or cuda).
	// example: cpu
	Device string `json:"device" example:"cpu"`
	// Negotiated compute precision of the current model.
	// example: int8
	ComputeType string `json:"compute_type,omitempty" example:"int8"`
	// Orchestrator lifecycle state (uninitialized, initializing, ready, failed).
	// example: ready
	State string `json:"state" example:"ready"`
	// Last load error observed, if any.
	LastError string `json:"last_error,omitempty"`
	// Names of all catalog models in registry order.
	AvailableModels []string `json:"available_models"`
	// Supported language codes mapped to display names.
	SupportedLanguages map[string]string `json:"supported_languages"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
