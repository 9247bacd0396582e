package configfile

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// IssueKind classifies a recoverable problem found on one line.
type IssueKind int

const (
	// IssueExpectedValue is a line holding a name but no value
	IssueExpectedValue IssueKind = iota
	// IssueUnknownOption is a name the registry does not know
	IssueUnknownOption
	// IssueInvalidValue is a value that does not decode for its option
	IssueInvalidValue
)

func (k IssueKind) String() string {
	switch k {
	case IssueExpectedValue:
		return "expected value"
	case IssueUnknownOption:
		return "unknown option"
	case IssueInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("IssueKind(%d)", k)
	}
}

// Issue is a skipped line. Loading always continues past it.
type Issue struct {
	Line  int       // 1-based line number
	Kind  IssueKind // What was wrong
	Name  string    // First token
	Value string    // Second token, if any
	Err   error     // Decode error for IssueInvalidValue
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueExpectedValue:
		return fmt.Sprintf("line %d: expected value after '%s'", i.Line, i.Name)
	case IssueUnknownOption:
		return fmt.Sprintf("line %d: unknown option '%s'", i.Line, i.Name)
	default:
		return fmt.Sprintf("line %d: invalid value '%s' for option '%s'", i.Line, i.Value, i.Name)
	}
}

// LoadReport describes what a Load did.
type LoadReport struct {
	Path         string   // File that was read, or written when Created
	Created      bool     // No file was found and the current values were saved instead
	UsedFallback bool     // The file came from the fallback directory
	Applied      []string // Option names set from the file, in file order
	Issues       []Issue  // Lines that were skipped
}

// Load fills the registry's slots from the config file.
//
// If no file is found, the current values are saved to the preferred
// directory and the report has Created set. Content problems never fail the
// load; they are returned as Issues. Errors are limited to failing to create
// the preferred directory or write the new file, and read failures on an
// opened file.
func (s *Store) Load() (*LoadReport, error) {
	loc := s.paths.ResolveForRead(s.filename)
	if loc.PreferredMissing {
		s.log.Info("Config directory not found", zap.String("dir", s.paths.PreferredDir))
	}

	if !loc.Found {
		return s.createDefault()
	}

	file, err := os.Open(loc.Path)
	if err != nil {
		s.log.Warn("Cannot open config file", zap.String("path", loc.Path), zap.Error(err))
		return s.createDefault()
	}
	defer file.Close()

	s.log.Info("Loading configuration", zap.String("path", loc.Path))

	report := &LoadReport{
		Path:         loc.Path,
		UsedFallback: loc.PreferredMissing,
	}
	if err := s.readOptions(file, report); err != nil {
		return report, NewReadError(loc.Path, err)
	}
	return report, nil
}

func (s *Store) createDefault() (*LoadReport, error) {
	s.log.Info("Config file not found, creating it", zap.String("file", s.filename))
	path, err := s.Save()
	if err != nil {
		return nil, err
	}
	return &LoadReport{Path: path, Created: true}, nil
}

// readOptions applies every "name value" line in src to the registry.
func (s *Store) readOptions(src io.Reader, report *LoadReport) error {
	lines := NewLineReader(src)
	for lineNum := 1; ; lineNum++ {
		line, ok, err := lines.ReadLine()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		tokens := Tokenize(line, 2)
		switch len(tokens) {
		case 0:
			continue
		case 1:
			s.log.Warn("Expected value", zap.Int("line", lineNum), zap.String("option", tokens[0]))
			report.Issues = append(report.Issues, Issue{Line: lineNum, Kind: IssueExpectedValue, Name: tokens[0]})
			continue
		}

		name, value := tokens[0], tokens[1]
		opt, found := s.registry.Find(name)
		if !found {
			s.log.Warn("Unknown option", zap.Int("line", lineNum), zap.String("option", name))
			report.Issues = append(report.Issues, Issue{Line: lineNum, Kind: IssueUnknownOption, Name: name, Value: value})
			continue
		}

		if err := opt.Decode(value); err != nil {
			// A bool that is neither true nor false is quietly left alone.
			logAt := s.log.Warn
			if opt.Kind() == KindBool {
				logAt = s.log.Debug
			}
			logAt("Invalid value, keeping previous",
				zap.Int("line", lineNum),
				zap.String("option", name),
				zap.String("value", value),
				zap.String("current", opt.Format()),
			)
			report.Issues = append(report.Issues, Issue{Line: lineNum, Kind: IssueInvalidValue, Name: name, Value: value, Err: err})
			continue
		}

		s.log.Debug("Option loaded", zap.String("option", name), zap.String("value", value))
		report.Applied = append(report.Applied, name)
	}
}
