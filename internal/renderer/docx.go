package renderer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/srt-docx/internal/srt"
)

const (
	monoFont   = "Consolas"
	scriptFont = "Courier New"

	colorPrimary   = "1A478A"
	colorSecondary = "5A9BD5"
	colorText      = "333333"
	colorMuted     = "888888"
	colorTimestamp = "7F8C8D"

	tableStyle = "LightGrid-Accent1"
)

// Render writes the record sequence to outputPath as a DOCX document in the
// renderer's configured style. Records reach the style writers through their
// generic key/value projection.
func (r *implRenderer) Render(ctx context.Context, records []srt.SubtitleRecord, sourceName, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	r.addTitle(doc, sourceName)
	r.addMetadata(doc, records, sourceName)
	doc.AddParagraph("")

	rows := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.AsMapping())
	}

	switch r.style {
	case StyleTable:
		r.writeTable(doc, rows)
	case StylePlain:
		r.writePlain(doc, rows)
	case StyleFormatted:
		r.writeFormatted(doc, rows)
	case StyleTextOnly:
		r.writeTextOnly(doc, rows)
	case StyleScript:
		r.writeScript(doc, rows)
	default:
		return fmt.Errorf("unknown style %q", r.style)
	}

	r.addFooter(doc, len(rows))

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	r.logger.Debug(ctx, "Rendered %d subtitles to %s (%s style)", len(rows), outputPath, r.style)
	return nil
}

func (r *implRenderer) addTitle(doc *docx.RootDoc, sourceName string) {
	p := doc.AddParagraph("")
	p.AddText("Subtitles: "+sourceName).Font(r.font).Size(16).Color(colorPrimary).Bold(true)
}

func (r *implRenderer) addMetadata(doc *docx.RootDoc, records []srt.SubtitleRecord, sourceName string) {
	parts := []string{
		"Source: " + sourceName,
		fmt.Sprintf("Total Subtitles: %d", len(records)),
		"Converted: " + time.Now().Format("2006-01-02 15:04:05"),
	}
	if len(records) > 0 {
		parts = append(parts, "Duration: ~"+records[len(records)-1].EndTime)
	}

	p := doc.AddParagraph("")
	p.AddText(strings.Join(parts, "  |  ")).Font(r.font).Size(8).Color(colorMuted).Italic(true)

	r.addSeparator(doc, 80)
}

func (r *implRenderer) addFooter(doc *docx.RootDoc, count int) {
	doc.AddParagraph("")
	r.addSeparator(doc, 80)

	p := doc.AddParagraph("")
	footer := fmt.Sprintf("Generated by SRT to DOCX Converter  |  %d subtitle entries  |  %s",
		count, time.Now().Format("2006-01-02 15:04:05"))
	p.AddText(footer).Font(r.font).Size(7).Color(colorMuted).Italic(true)
}

func (r *implRenderer) addSeparator(doc *docx.RootDoc, width int) {
	p := doc.AddParagraph("")
	p.AddText(strings.Repeat("─", width)).Font(r.font).Size(6).Color("CCCCCC")
}

func (r *implRenderer) writeTable(doc *docx.RootDoc, rows []map[string]interface{}) {
	table := doc.AddTable()
	table.Style(tableStyle)

	hdr := table.AddRow()
	for _, heading := range []string{"#", "Start Time", "End Time", "Subtitle Text"} {
		p := hdr.AddCell().AddParagraph("")
		p.AddText(heading).Font(r.font).Size(10).Bold(true)
	}

	for _, row := range rows {
		tr := table.AddRow()

		p := tr.AddCell().AddParagraph("")
		p.AddText(strconv.Itoa(fieldInt(row, "index"))).Font(r.font).Size(9).Color(colorPrimary).Bold(true)

		p = tr.AddCell().AddParagraph("")
		p.AddText(fieldString(row, "start_time")).Font(monoFont).Size(8).Color(colorTimestamp)

		p = tr.AddCell().AddParagraph("")
		p.AddText(fieldString(row, "end_time")).Font(monoFont).Size(8).Color(colorTimestamp)

		p = tr.AddCell().AddParagraph("")
		p.AddText(fieldString(row, "text")).Font(r.font).Size(10).Color(colorText)
	}
}

func (r *implRenderer) writePlain(doc *docx.RootDoc, rows []map[string]interface{}) {
	for i, row := range rows {
		header := doc.AddParagraph("")
		header.AddText(fmt.Sprintf(" %d ", fieldInt(row, "index"))).Font(r.font).Size(9).Color(colorPrimary).Bold(true)
		header.AddText("  ").Font(r.font).Size(9)
		stamp := fmt.Sprintf("%s  →  %s", fieldString(row, "start_time"), fieldString(row, "end_time"))
		header.AddText(stamp).Font(monoFont).Size(9).Color(colorTimestamp).Italic(true)

		text := doc.AddParagraph("")
		text.AddText(fieldString(row, "text")).Font(r.font).Size(r.fontSize).Color(colorText)

		if i < len(rows)-1 {
			r.addSeparator(doc, 70)
		}
	}
}

func (r *implRenderer) writeFormatted(doc *docx.RootDoc, rows []map[string]interface{}) {
	for _, row := range rows {
		p := doc.AddParagraph("")
		stamp := fmt.Sprintf("[%s – %s]  ", fieldString(row, "start_time"), fieldString(row, "end_time"))
		p.AddText(stamp).Font(monoFont).Size(8).Color(colorTimestamp).Italic(true)
		p.AddText(fieldString(row, "text")).Font(r.font).Size(r.fontSize).Color(colorText)
	}
}

func (r *implRenderer) writeTextOnly(doc *docx.RootDoc, rows []map[string]interface{}) {
	for _, row := range rows {
		p := doc.AddParagraph("")
		p.AddText(fieldString(row, "text")).Font(r.font).Size(r.fontSize + 1).Color(colorText)
	}
}

func (r *implRenderer) writeScript(doc *docx.RootDoc, rows []map[string]interface{}) {
	for _, row := range rows {
		marker := doc.AddParagraph("")
		stamp := fmt.Sprintf("[%s → %s]", fieldString(row, "start_time"), fieldString(row, "end_time"))
		marker.AddText(stamp).Font(scriptFont).Size(8).Color(colorSecondary).Bold(true)

		text := doc.AddParagraph("")
		text.AddText(fieldString(row, "text")).Font(scriptFont).Size(r.fontSize).Color(colorText)
	}
}

func fieldString(row map[string]interface{}, key string) string {
	s, _ := row[key].(string)
	return s
}

func fieldInt(row map[string]interface{}, key string) int {
	n, _ := row[key].(int)
	return n
}
