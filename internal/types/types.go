package types

// Core domain records ------------------------------------------------------

// CareInstructions holds free-text care advice for one plant.
type CareInstructions struct {
	Water       string `json:"water"`
	Light       string `json:"light"`
	Soil        string `json:"soil"`
	Temperature string `json:"temperature"`
}

// PlantInfo is the result of an identification. It has no identity of its
// own until saved to the garden.
type PlantInfo struct {
	Name           string           `json:"name"`
	ScientificName string           `json:"scientificName"`
	Description    string           `json:"description"`
	Care           CareInstructions `json:"care"`
	FunFact        string           `json:"funFact"`
}

// SavedPlant is a PlantInfo plus persistence metadata. ID is assigned once
// at save time and never changes. ImageURL is a self-contained data URI so
// the record carries no external file references.
type SavedPlant struct {
	PlantInfo
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	DateAdded int64  `json:"dateAdded"`
}

// HealthStatus is the three-value diagnosis verdict. Anything else coming
// back from the model is a contract violation, not a fourth state.
type HealthStatus string

const (
	StatusHealthy HealthStatus = "Healthy"
	StatusSick    HealthStatus = "Sick"
	StatusUnknown HealthStatus = "Unknown"
)

// Valid reports whether s is one of the three allowed statuses.
func (s HealthStatus) Valid() bool {
	switch s {
	case StatusHealthy, StatusSick, StatusUnknown:
		return true
	}
	return false
}

// DiagnosisResult lives only in orchestration state for the current session
// and is replaced on each new diagnosis request.
type DiagnosisResult struct {
	HealthStatus HealthStatus `json:"healthStatus"`
	Diagnosis    string       `json:"diagnosis"`
	Symptoms     []string     `json:"symptoms"`
	Treatment    []string     `json:"treatment"`
	Prevention   string       `json:"prevention"`
}

// ProductRecommendation is one treatment product found via search. Price may
// be empty, meaning "unknown, defer to the source link". ProductURL falls
// back to a grounding-source link when absent.
type ProductRecommendation struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ProductURL  string `json:"productUrl,omitempty"`
}

// GroundingWeb is the minimal shape kept from a web citation; anything
// beyond title/uri in the raw grounding payload is ignored.
type GroundingWeb struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// GroundingChunk is one source citation attached to a retrieval-augmented
// response.
type GroundingChunk struct {
	Web *GroundingWeb `json:"web,omitempty"`
}

// SearchResult is the outcome of a product search: best-effort structured
// products plus the raw model text and citations. Raw text and citations
// survive even when the product JSON does not parse.
type SearchResult struct {
	Products        []ProductRecommendation `json:"products"`
	RawText         string                  `json:"rawText,omitempty"`
	GroundingChunks []GroundingChunk        `json:"groundingChunks,omitempty"`
}

// Chat ---------------------------------------------------------------------

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of the conversation. Text may embed inline
// markdown image references of the form ![alt](url) that renderers
// special-case.
type ChatMessage struct {
	Role            string           `json:"role"`
	Text            string           `json:"text"`
	Timestamp       int64            `json:"timestamp"`
	GroundingChunks []GroundingChunk `json:"groundingChunks,omitempty"`
}
