// Package export writes category buckets to spreadsheet workbooks for
// merchandising review.
package export

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/grip-data/review-insights/internal/model"
)

// Excel caps sheet names at 31 chars and rejects a handful of
// characters.
const maxSheetName = 31

var sheetNameSanitizer = strings.NewReplacer(
	"[", " ", "]", " ", "*", " ", "?", " ",
	":", " ", "/", " ", "\\", " ",
)

// WriteBuckets saves one sheet per category, in bucket order, with a
// header row and one row per display entry.
func WriteBuckets(path string, buckets []model.CategoryBucket) error {
	if len(buckets) == 0 {
		return eris.New("export: no buckets to write")
	}

	file := xlsx.NewFile()
	used := make(map[string]bool)

	for i, bucket := range buckets {
		base := sheetName(bucket.Category, i)
		name := base
		for n := 2; used[name]; n++ {
			suffix := fmt.Sprintf(" %d", n)
			name = truncate(base, maxSheetName-len(suffix)) + suffix
		}
		used[name] = true

		sheet, err := file.AddSheet(name)
		if err != nil {
			return eris.Wrapf(err, "export: add sheet %q", bucket.Category)
		}

		header := sheet.AddRow()
		for _, h := range []string{"product", "reviewer", "review", "rating", "price", "kind", "thumbnail"} {
			header.AddCell().Value = h
		}

		for _, e := range bucket.Entries {
			row := sheet.AddRow()
			row.AddCell().Value = e.DisplayName
			row.AddCell().Value = e.ReviewerName
			row.AddCell().Value = e.Text
			row.AddCell().SetFloat(e.Rating)
			row.AddCell().SetFloat(e.CostPrice)
			row.AddCell().Value = e.ProductKind.Label()
			row.AddCell().Value = e.ThumbnailURL
		}
	}

	return eris.Wrapf(file.Save(path), "export: save %s", path)
}

func sheetName(category string, idx int) string {
	name := strings.TrimSpace(sheetNameSanitizer.Replace(category))
	if name == "" {
		name = fmt.Sprintf("category-%d", idx+1)
	}
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}
