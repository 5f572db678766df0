package client

import (
	"context"

	dbpkg "yumicuit/db"
	"yumicuit/models"

	"github.com/jinzhu/gorm"
)

// Journal ties the relay client to the local record store: load a record,
// run an operation, reconcile the outcome and persist in one write.
type Journal struct {
	DB  *gorm.DB
	API *Client
}

func NewJournal(db *gorm.DB, api *Client) *Journal {
	return &Journal{DB: db, API: api}
}

// AnalyzeDream runs an analysis for the stored record and persists the
// updated analysis state.
func (j *Journal) AnalyzeDream(ctx context.Context, dreamID string) (*models.DreamRecord, error) {
	rec, err := dbpkg.GetDream(j.DB, dreamID)
	if err != nil {
		return nil, err
	}

	res, err := j.API.Analyze(ctx, rec.ID, rec.Content(), rec.AnalysisCount, rec.LastContentHash)
	if err != nil {
		return nil, err
	}

	rec.ApplyAnalysis(res.Analysis, res.NewAnalysisCount, res.ContentHash)
	if err := dbpkg.SaveDream(j.DB, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AnalyzeDreamWithImage runs analysis and illustration together. Both
// calls settle before the record is touched; the store sees exactly one
// write whether or not an image arrived.
func (j *Journal) AnalyzeDreamWithImage(ctx context.Context, dreamID string) (*models.DreamRecord, error) {
	rec, err := dbpkg.GetDream(j.DB, dreamID)
	if err != nil {
		return nil, err
	}

	res, err := j.API.AnalyzeWithImage(ctx, rec.ID, rec.Content(), rec.AnalysisCount, rec.LastContentHash)
	if err != nil {
		return nil, err
	}

	rec.ApplyAnalysis(res.Analysis, res.NewAnalysisCount, res.ContentHash)
	if res.Image != "" {
		rec.AddImage(models.NewDreamImage(res.Image, models.ImageSourceAI))
	}
	if err := dbpkg.SaveDream(j.DB, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GenerateDreamImage attaches a generated illustration to the record
// without spending analysis quota.
func (j *Journal) GenerateDreamImage(ctx context.Context, dreamID string) (*models.DreamRecord, error) {
	rec, err := dbpkg.GetDream(j.DB, dreamID)
	if err != nil {
		return nil, err
	}

	image, err := j.API.GenerateImage(ctx, rec.Content())
	if err != nil {
		return nil, err
	}

	rec.AddImage(models.NewDreamImage(image, models.ImageSourceAI))
	if err := dbpkg.SaveDream(j.DB, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AddUserImage attaches a user-uploaded image (already encoded as a data
// URI) to the record.
func (j *Journal) AddUserImage(dreamID, data string) (*models.DreamRecord, error) {
	rec, err := dbpkg.GetDream(j.DB, dreamID)
	if err != nil {
		return nil, err
	}
	rec.AddImage(models.NewDreamImage(data, models.ImageSourceUser))
	if err := dbpkg.SaveDream(j.DB, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RemoveImage deletes one image from the record by id.
func (j *Journal) RemoveImage(dreamID, imageID string) (*models.DreamRecord, error) {
	rec, err := dbpkg.GetDream(j.DB, dreamID)
	if err != nil {
		return nil, err
	}
	if rec.RemoveImage(imageID) {
		if err := dbpkg.SaveDream(j.DB, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
