package flex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileSuffix is the naming convention for saved cash transaction reports.
// The date prefix makes lexicographic order chronological.
const FileSuffix = "_cash-tx.xml"

// LoadReport reads a Flex report. An explicit report path takes precedence;
// otherwise the latest report in reportsDir (or the current directory) is
// used. The chosen path is echoed so the operator can verify the input.
func LoadReport(reportPath, reportsDir string) ([]byte, error) {
	path := reportPath
	if path == "" {
		latest, err := LatestReportPath(reportsDir)
		if err != nil {
			return nil, err
		}
		path = latest
	}

	fmt.Printf("Using %s\n", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading flex report: %w", err)
	}
	return content, nil
}

// LatestReportPath returns the newest report file in the given directory, or
// in the current directory when dir is empty.
func LatestReportPath(dir string) (string, error) {
	pattern := filepath.Join(dir, "*"+FileSuffix)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}

	paths := matches[:0]
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && !info.IsDir() {
			paths = append(paths, match)
		}
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no report files found for pattern %s", pattern)
	}

	sort.Strings(paths)
	return paths[len(paths)-1], nil
}
