// Package artifact produces placeholder deliverable files: spreadsheet
// workbooks when the rich format can be built, plain-text stubs otherwise.
package artifact

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Kind selects the cell layout of a placeholder document.
type Kind string

const (
	KindMain      Kind = "main"
	KindChecklist Kind = "checklist"
	KindMinutes   Kind = "minutes"
	KindSource    Kind = "source-placeholder"
)

// Outcome reports how an artifact was produced. A degraded outcome means the
// rich format failed and the caller received the plain-text stub instead;
// generation continues either way.
type Outcome string

const (
	OutcomeRich        Outcome = "rich"
	OutcomeDegraded    Outcome = "degraded"
	OutcomePlaceholder Outcome = "placeholder"
)

// Fixed header labels written into review artifacts.
const (
	ChecklistHeader = "Review Checklist"
	MinutesHeader   = "Review Minutes"
)

// Writer produces the bytes of one placeholder artifact. Implementations
// never fail: the worst case is the degraded text stub.
type Writer interface {
	Write(kind Kind, title, project, item, fileName string) ([]byte, Outcome)
}

// Fallback is the fixed plain-text stub content for a file name.
func Fallback(fileName string) []byte {
	return []byte(fmt.Sprintf("Dummy Excel Content (Fallback) - %s\n", fileName))
}

// ExcelWriter builds real .xlsx workbooks.
type ExcelWriter struct{}

func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

func (w *ExcelWriter) Write(kind Kind, title, project, item, fileName string) ([]byte, Outcome) {
	if kind == KindSource {
		return nil, OutcomePlaceholder
	}
	data, err := buildWorkbook(kind, title, project, item, fileName)
	if err != nil {
		return Fallback(fileName), OutcomeDegraded
	}
	return data, OutcomeRich
}

func buildWorkbook(kind Kind, title, project, item, fileName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	switch kind {
	case KindMain:
		if err := f.SetCellValue(sheet, "B5", fmt.Sprintf("%s\n%s\n%s", title, project, item)); err != nil {
			return nil, err
		}
		style, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true}})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "B5", "B5", style); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "A1", "Main document placeholder: "+fileName); err != nil {
			return nil, err
		}

	case KindChecklist:
		cells := []struct{ ref, value string }{
			{"A1", "Review checklist placeholder: " + fileName},
			{"B2", ChecklistHeader},
			{"B3", title},
			{"B4", project},
			{"B5", item},
		}
		for _, c := range cells {
			if err := f.SetCellValue(sheet, c.ref, c.value); err != nil {
				return nil, err
			}
		}

	case KindMinutes:
		cells := []struct{ ref, value string }{
			{"A1", "Review minutes placeholder: " + fileName},
			{"B2", MinutesHeader},
			{"G2", fmt.Sprintf("%s_%s_%s Review", project, item, title)},
		}
		for _, c := range cells {
			if err := f.SetCellValue(sheet, c.ref, c.value); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TextWriter emits the plain-text stub for every document. It backs the
// --plain flag and doubles as the forced-degradation path in tests.
type TextWriter struct{}

func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

func (w *TextWriter) Write(kind Kind, title, project, item, fileName string) ([]byte, Outcome) {
	if kind == KindSource {
		return nil, OutcomePlaceholder
	}
	return Fallback(fileName), OutcomeDegraded
}
