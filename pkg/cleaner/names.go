// pkg/cleaner/names.go
package cleaner

import (
	"fmt"
	"strings"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// normalizeColumnNames rewrites every column name to its normalized
// form and logs one action per renamed column. Names that are already
// normalized are left alone and not logged. A post-normalization
// collision aborts the run.
func (tc *TableCleaner) normalizeColumnNames(t *model.Table, report *model.CleaningReport) error {
	seen := make(map[string]string, len(t.Columns)) // normalized -> original

	for i := range t.Columns {
		original := t.Columns[i].Name
		normalized := normalizeName(original)

		if first, dup := seen[normalized]; dup {
			return &DuplicateColumnNameError{
				Name:   normalized,
				First:  first,
				Second: original,
			}
		}
		seen[normalized] = original

		if normalized == original {
			continue
		}

		t.Columns[i].Name = normalized
		report.Append(model.CleaningAction{
			Stage:  StageColumnNames,
			Column: normalized,
			Detail: fmt.Sprintf("renamed from %q", original),
		})
	}

	return nil
}

// normalizeName lowercases a column name, collapses every run of
// non-alphanumeric characters to a single underscore, and strips
// leading and trailing underscores
func normalizeName(name string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(r)
	}

	return b.String()
}
