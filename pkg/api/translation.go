package api

// Language identifies one language supported by the translation provider.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AvailableLanguages lists the provider's source and target languages.
type AvailableLanguages struct {
	SourceLanguages []Language `json:"sourceLanguages"`
	TargetLanguages []Language `json:"targetLanguages"`
}

// TranslationRequest asks for a translation of Text into the target
// language To. From is optional; the provider detects the source language
// when it is empty.
type TranslationRequest struct {
	Text string `json:"text"`
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// TranslationResponse carries the translated text line by line together
// with the languages the provider detected.
type TranslationResponse struct {
	TranslatedTextLines []string   `json:"translatedTextLines"`
	DetectedLanguages   []Language `json:"detectedLanguages"`
}
