package db

import (
	"path/filepath"
	"testing"

	"yumicuit/config"
	"yumicuit/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.AutoMigrate(&models.DreamRecord{})
	return db
}

func TestSaveAndGetDream_Roundtrip(t *testing.T) {
	db := openTestDB(t)

	rec := models.NewDreamRecord([]string{"空", "飛ぶ", "怖くない"})
	rec.AddImage(models.NewDreamImage("data:image/png;base64,QQ==", models.ImageSourceUser))
	require.NoError(t, SaveDream(db, rec))

	got, err := GetDream(db, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, []string{"空", "飛ぶ", "怖くない"}, got.Tokens)
	require.Len(t, got.Images, 1)
	assert.Equal(t, rec.Images[0].ID, got.Images[0].ID)
	assert.Equal(t, models.ImageSourceUser, got.Images[0].Source)
}

func TestSaveDream_Upsert(t *testing.T) {
	db := openTestDB(t)

	rec := models.NewDreamRecord([]string{"最初"})
	require.NoError(t, SaveDream(db, rec))

	rec.SetContent("編集した\n内容")
	rec.ApplyAnalysis("分析結果", 1, "abc123")
	require.NoError(t, SaveDream(db, rec))

	got, err := GetDream(db, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"編集した", "内容"}, got.Tokens)
	assert.Equal(t, 1, got.AnalysisCount)
	assert.Equal(t, "abc123", got.LastContentHash)
	assert.Equal(t, "分析結果", got.LastAnalysis)

	var count int
	db.Model(&models.DreamRecord{}).Count(&count)
	assert.Equal(t, 1, count, "upsert must not duplicate the row")
}

func TestGetDream_NotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetDream(db, "missing")
	assert.True(t, gorm.IsRecordNotFoundError(err))
}

func TestDeleteDream(t *testing.T) {
	db := openTestDB(t)

	rec := models.NewDreamRecord([]string{"消える夢"})
	require.NoError(t, SaveDream(db, rec))
	require.NoError(t, DeleteDream(db, rec.ID))

	_, err := GetDream(db, rec.ID)
	assert.True(t, gorm.IsRecordNotFoundError(err))

	// Unknown ids are a no-op.
	assert.NoError(t, DeleteDream(db, "missing"))
}

func TestConnect_CreatesStoreAndMigrates(t *testing.T) {
	conf := config.Configuration{DBPath: filepath.Join(t.TempDir(), "journal", "journal.db")}

	db, err := Connect(conf)
	require.NoError(t, err)
	defer db.Close()

	rec := models.NewDreamRecord([]string{"夢"})
	require.NoError(t, SaveDream(db, rec))

	got, err := GetDream(db, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}
