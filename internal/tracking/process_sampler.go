package tracking

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"atd/internal/models"
	"atd/internal/providers"
	"atd/internal/structures"
)

// ProcessSampler detects the target application through the process
// table and infers the active document from the file handles it holds
// open, filtered by the configured document extensions. It stands in for
// application automation bridges on hosts where none is wired up.
type ProcessSampler struct {
	processName string
	extensions  []string
	logger      providers.Logger
}

func NewProcessSampler(conf *structures.Config, logger providers.Logger) TargetAppProvider {
	exts := make([]string, 0, len(conf.Tracking.FileExtensions))
	for _, ext := range conf.Tracking.FileExtensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	return &ProcessSampler{
		processName: normalizeProcName(conf.Tracking.TargetProcess),
		extensions:  exts,
		logger:      logger,
	}
}

func (ps *ProcessSampler) GetTargetAppState() (models.TargetAppState, error) {
	procs, err := process.Processes()
	if err != nil {
		return models.TargetAppState{}, err
	}

	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if normalizeProcName(name) != ps.processName {
			continue
		}
		return models.TargetAppState{
			Active: true,
			FileID: ps.activeDocument(proc),
		}, nil
	}

	// Target app not running: expected absence, not an error.
	return models.TargetAppState{}, nil
}

func (ps *ProcessSampler) activeDocument(proc *process.Process) string {
	if len(ps.extensions) == 0 {
		return ""
	}
	files, err := proc.OpenFiles()
	if err != nil {
		ps.logger.Debugf(providers.TypeTracker, "cannot list open files of pid %d: %s", proc.Pid, err)
		return ""
	}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Path))
		for _, want := range ps.extensions {
			if ext == want {
				return f.Path
			}
		}
	}
	return ""
}

func normalizeProcName(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}
