package tracking

import (
	"fmt"
	"os"
	"os/user"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"atd/internal/models"
	"atd/internal/providers"
	"atd/internal/services"
	"atd/internal/tracking/interfaces"
)

type FileManager struct {
	service    services.TrackingServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.TrackingServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes the full persisted document with fresh metadata. The
// write goes to a sibling tmp file first and is renamed over the
// destination only once fully synced, so a failed save never corrupts
// the previous data file.
func (f *FileManager) SaveToFile(fileName string) error {
	doc := models.PersistedDocument{
		Metadata:     newMetadata(),
		TrackingData: f.service.GetSnapshot(),
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile merges the persisted document into the service's store.
// A missing file is a clean start. A malformed file is reported and the
// store is left as-is: losing history must not prevent tracking new
// history.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Cannot decompress data file: %s", err)
		return err
	}

	// Current format: Metadata + TrackingData with day buckets.
	var doc models.PersistedDocument
	if err := json.Unmarshal(decompressedData, &doc); err == nil && doc.TrackingData != nil {
		f.service.MergeData(doc.TrackingData)
		return nil
	}

	// Legacy format: flat file -> totals, no day dimension. Totals are
	// nested under the current day; the legacy shape is never written
	// back.
	f.logger.Warnf(providers.TypeApp, "Inconsistent data file found, try to migrate from legacy format")
	var legacy map[string]*models.LegacyRecord
	if err := json.Unmarshal(decompressedData, &legacy); err != nil || len(legacy) == 0 {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return fmt.Errorf("unrecognized data file format")
	}

	today := models.DayKey(time.Now())
	migrated := make(map[string]*models.ActivityRecord, len(legacy))
	for fileID, rec := range legacy {
		if rec == nil {
			continue
		}
		seconds, err := cast.ToFloat64E(rec.TotalActiveSeconds)
		if err != nil || seconds <= 0 {
			continue
		}
		migrated[fileID] = &models.ActivityRecord{
			DailyActivity: map[string]*models.DayBucket{
				today: {
					TotalActiveSeconds: seconds,
					LastSeenTime:       rec.LastSeenTime,
				},
			},
		}
	}
	if len(migrated) == 0 {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return fmt.Errorf("unrecognized data file format")
	}

	f.service.MergeData(migrated)
	f.logger.Warnf(providers.TypeApp, "Migration from legacy format successful: %d files", len(migrated))
	return nil
}

func newMetadata() models.Metadata {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	userName := "unknown"
	if u, err := user.Current(); err == nil {
		userName = u.Username
	}
	return models.Metadata{
		ComputerName: host,
		UserName:     userName,
		ExportTime:   models.NewTrackTime(time.Now()),
		Version:      models.FormatVersion,
	}
}
