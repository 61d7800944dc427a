package apibible

// Wire shapes for the endpoints the services consume. Fields not used
// anywhere downstream are omitted.

// TranslationData is one entry of GET /bibles, and the payload of
// GET /bibles/{id}.
type TranslationData struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	NameLocal         string           `json:"nameLocal"`
	Abbreviation      string           `json:"abbreviation"`
	AbbreviationLocal string           `json:"abbreviationLocal"`
	Description       string           `json:"description"`
	DescriptionLocal  string           `json:"descriptionLocal"`
	Language          LanguageData     `json:"language"`
	AudioBibles       []AudioBibleData `json:"audioBibles"`
}

// LanguageData describes a translation's language.
type LanguageData struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	NameLocal       string `json:"nameLocal"`
	Script          string `json:"script"`
	ScriptDirection string `json:"scriptDirection"`
}

// AudioBibleData is an audio edition attached to a translation.
type AudioBibleData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameLocal string `json:"nameLocal"`
}

// BookData is one entry of GET /bibles/{id}/books?include-chapters=true.
type BookData struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Abbreviation string        `json:"abbreviation"`
	Chapters     []ChapterData `json:"chapters"`
}

// ChapterData is a chapter stub inside BookData. Number is a string on the
// wire: intro chapters arrive as "intro" and are filtered downstream.
type ChapterData struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// PassageData is the payload of GET /bibles/{id}/passages/{osis}.
type PassageData struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Content   string `json:"content"`
}

// SearchData is the payload of GET /bibles/{id}/search.
type SearchData struct {
	Query  string      `json:"query"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
	Total  int         `json:"total"`
	Verses []VerseData `json:"verses"`
}

// VerseData is one search hit.
type VerseData struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Text      string `json:"text"`
}
