package trending

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DigestFile represents a discovered input file together with the snapshot
// date taken from its name.
type DigestFile struct {
	Path string `json:"path"`
	Date string `json:"date"`
}

// Warning describes a content anomaly encountered while parsing a digest
// file. Warnings are reported and the entry is skipped; they never abort a
// parse.
type Warning struct {
	File    string `json:"file"`
	Line    int    `json:"line"` // 1-based
	Message string `json:"message"`
}

// String renders the warning in the operator-facing format.
func (w Warning) String() string {
	return fmt.Sprintf("Warning: %s:%d - %s", w.File, w.Line, w.Message)
}

var (
	dateFilenameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.md$`)
	languageRe     = regexp.MustCompile(`^####\s+(.+)$`)
	entryRe        = regexp.MustCompile(`^[*-]\s+\[([^\]]+)\]\(https?://github\.com/[^)]+\):(.*)$`)
	entryStartRe   = regexp.MustCompile(`^[*-]\s+\[[^\]]+\]\(https?://github\.com/`)
)

// DateFromFilename extracts the YYYY-MM-DD date from a digest file name like
// "2017-08-29.md". The match is strictly positional; no calendar validation
// is performed. Returns false if the name does not fit the pattern.
func DateFromFilename(name string) (string, bool) {
	m := dateFilenameRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseDigest parses the content of one digest file and returns the records
// it contains plus any warnings. name is used only for warning messages;
// date becomes the Date field of every emitted record.
//
// The grammar is line-oriented: "#### <language>" headers set the current
// language section, "* [owner/repo](https://github.com/...):<description>"
// lines (also with "-" bullets) open an entry, and subsequent plain lines
// continue the entry's description until a blank line, a new header, or a
// new entry. Content anomalies are reported as warnings and skipped.
func ParseDigest(name, date, content string) ([]*Record, []Warning) {
	var records []*Record
	var warnings []Warning

	lines := strings.Split(content, "\n")
	language := ""
	hasLanguage := false

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		lineNum := i + 1

		// Blank lines and date headers carry no state.
		if line == "" || strings.HasPrefix(line, "## ") {
			i++
			continue
		}

		if m := languageRe.FindStringSubmatch(line); m != nil {
			// A header always overrides the previous section; there is no
			// nesting.
			language = strings.ToLower(strings.TrimSpace(m[1]))
			hasLanguage = true
			i++
			continue
		}

		if m := entryRe.FindStringSubmatch(line); m != nil {
			if !hasLanguage {
				warnings = append(warnings, Warning{
					File:    name,
					Line:    lineNum,
					Message: "repository entry without language section, skipping",
				})
				i++
				continue
			}

			rawSlug := m[1]
			description := strings.TrimSpace(m[2])

			// Continuation scan: descriptions may wrap onto following lines.
			// The only terminators are a blank line, a new header, or a new
			// entry; the stopping line is re-examined by the outer loop.
			j := i + 1
			for j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if next == "" || strings.HasPrefix(next, "####") {
					break
				}
				if entryStartRe.MatchString(next) {
					break
				}
				description += " " + next
				j++
			}
			i = j

			slug := NormalizeSlug(rawSlug)

			// An entry whose slug has no separator is discarded, but the
			// cursor stays past the consumed continuation lines so they are
			// not reprocessed as new entries.
			if !strings.Contains(slug, "/") {
				warnings = append(warnings, Warning{
					File:    name,
					Line:    lineNum,
					Message: fmt.Sprintf("invalid repo slug '%s', skipping", rawSlug),
				})
				continue
			}

			records = append(records, &Record{
				Date:        date,
				Language:    language,
				RepoSlug:    slug,
				Description: strings.TrimSpace(description),
			})
			continue
		}

		if strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-") {
			warnings = append(warnings, Warning{
				File:    name,
				Line:    lineNum,
				Message: fmt.Sprintf("malformed repository entry, skipping: %s...", truncateLine(line, 50)),
			})
			i++
			continue
		}

		i++
	}

	return records, warnings
}

// truncateLine returns the first maxLen characters of s.
func truncateLine(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
