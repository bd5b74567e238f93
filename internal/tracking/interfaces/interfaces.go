package interfaces

import "context"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// TrackerInterface is the lifecycle surface the application drives. Run
// blocks until the context is cancelled and the final drain (save +
// export) has completed.
type TrackerInterface interface {
	Restore() error
	Run(ctx context.Context)
	Persist() error
	ExportReport() error
}
