package tracking

import (
	"encoding/csv"
	"os"
	"strconv"

	"atd/internal/models"
	"atd/internal/providers"
	"atd/internal/services"
)

var reportHeader = []string{
	"Date",
	"FileName",
	"FullPath",
	"TotalActiveSeconds",
	"TotalActiveMinutes",
	"TotalActiveHours",
	"LastSeenTime",
}

// Exporter flattens the store into the delimited per-(file, day) report.
type Exporter struct {
	service services.TrackingServiceInterface
	logger  providers.Logger
}

func NewExporter(service services.TrackingServiceInterface, logger providers.Logger) *Exporter {
	return &Exporter{
		service: service,
		logger:  logger,
	}
}

func (e *Exporter) ExportToFile(fileName string) error {
	rows := e.service.GetRows()

	file, err := os.Create(fileName)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(reportHeader); err != nil {
		file.Close()
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.FileName,
			row.FullPath,
			strconv.FormatFloat(row.TotalActiveSeconds, 'f', 2, 64),
			strconv.FormatFloat(row.TotalActiveMinutes, 'f', 2, 64),
			strconv.FormatFloat(row.TotalActiveHours, 'f', 4, 64),
			row.LastSeenTime.Format(models.TimeLayout),
		}
		if err := w.Write(record); err != nil {
			file.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	e.logger.Infof(providers.TypeApp, "Exported %d report rows to %s", len(rows), fileName)
	return nil
}
