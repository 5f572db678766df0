package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Image sources.
const (
	ImageSourceUser = "user"
	ImageSourceAI   = "ai"
)

// DreamImage is one image attached to a record, either uploaded by the
// user or generated by the image model. Data is a self-contained data URI.
type DreamImage struct {
	ID        string `json:"id"`
	Data      string `json:"data"`
	Source    string `json:"source"`
	CreatedAt int64  `json:"created_at"`
}

// DreamRecord is one journal entry. Tokens are the fragmentary lines the
// user typed right after waking up; Images and Tokens live in JSON text
// columns so the whole record stays a single row.
type DreamRecord struct {
	ID        string `gorm:"primary_key" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`

	Tokens    []string `gorm:"-" json:"tokens"`
	TokensRaw string   `gorm:"column:tokens;type:text" json:"-"`

	// Analysis state: at most 3 analyses per record, and never twice on
	// unchanged content.
	AnalysisCount   int    `json:"analysis_count"`
	LastContentHash string `json:"last_content_hash,omitempty"`
	LastAnalysis    string `gorm:"type:text" json:"last_analysis,omitempty"`

	Images    []DreamImage `gorm:"-" json:"images"`
	ImagesRaw string       `gorm:"column:images;type:text" json:"-"`
}

// NewDreamRecord creates an empty record with a fresh id.
func NewDreamRecord(tokens []string) *DreamRecord {
	now := time.Now().UnixMilli()
	return &DreamRecord{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Tokens:    tokens,
	}
}

// NewDreamImage wraps an encoded image payload with a fresh id.
func NewDreamImage(data, source string) DreamImage {
	return DreamImage{
		ID:        uuid.New().String(),
		Data:      data,
		Source:    source,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Content joins the tokens into the text the models see.
func (d *DreamRecord) Content() string {
	return strings.Join(d.Tokens, "\n")
}

// SetContent replaces the tokens from free-form edited text. Lines are
// trimmed and empty lines dropped, as in the edit view.
func (d *DreamRecord) SetContent(text string) {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			tokens = append(tokens, line)
		}
	}
	d.Tokens = tokens
	d.Touch()
}

// ApplyAnalysis records a successful analysis result on the record.
func (d *DreamRecord) ApplyAnalysis(analysis string, newCount int, contentHash string) {
	d.LastAnalysis = analysis
	d.AnalysisCount = newCount
	d.LastContentHash = contentHash
	d.Touch()
}

// AddImage appends an image, keeping insertion order.
func (d *DreamRecord) AddImage(img DreamImage) {
	d.Images = append(d.Images, img)
	d.Touch()
}

// RemoveImage deletes the image with the given id. It removes exactly one
// entry and preserves the order of the rest. Returns false when no image
// matched.
func (d *DreamRecord) RemoveImage(id string) bool {
	for i, img := range d.Images {
		if img.ID == id {
			d.Images = append(d.Images[:i], d.Images[i+1:]...)
			d.Touch()
			return true
		}
	}
	return false
}

func (d *DreamRecord) Touch() {
	d.UpdatedAt = time.Now().UnixMilli()
}

// BeforeSave packs the slice fields into their JSON text columns.
func (d *DreamRecord) BeforeSave() error {
	tokens, err := json.Marshal(d.Tokens)
	if err != nil {
		return err
	}
	d.TokensRaw = string(tokens)

	images, err := json.Marshal(d.Images)
	if err != nil {
		return err
	}
	d.ImagesRaw = string(images)
	return nil
}

// AfterFind unpacks the JSON text columns.
func (d *DreamRecord) AfterFind() error {
	if d.TokensRaw != "" {
		if err := json.Unmarshal([]byte(d.TokensRaw), &d.Tokens); err != nil {
			return err
		}
	}
	if d.ImagesRaw != "" {
		if err := json.Unmarshal([]byte(d.ImagesRaw), &d.Images); err != nil {
			return err
		}
	}
	return nil
}
