package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/roigo/roi-calculator/internal/domain"
)

// Formatter defines a pluggable report formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// NormalizeFormatName canonicalizes a user-supplied format name.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "text", "txt", "stdout":
		return "console"
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file with the given extension, returning the filename.
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("roi_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
